package domain

import "testing"

func TestListOptionsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListOptions
		want ListOptions
	}{
		{
			name: "zero value gets defaults",
			in:   ListOptions{},
			want: ListOptions{Page: 1, Limit: 20, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			name: "negative page clamps to first",
			in:   ListOptions{Page: -3, Limit: 10, SortBy: "id", SortOrder: "asc"},
			want: ListOptions{Page: 1, Limit: 10, SortBy: "id", SortOrder: "asc"},
		},
		{
			name: "oversized limit resets",
			in:   ListOptions{Page: 2, Limit: 500, SortBy: "created_at", SortOrder: "desc"},
			want: ListOptions{Page: 2, Limit: 20, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			name: "unknown sort falls back",
			in:   ListOptions{Page: 1, Limit: 20, SortBy: "likes", SortOrder: "sideways"},
			want: ListOptions{Page: 1, Limit: 20, SortBy: "created_at", SortOrder: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			if tt.in != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", tt.in, tt.want)
			}
		})
	}
}

func TestListOptionsOffset(t *testing.T) {
	opts := ListOptions{Page: 3, Limit: 20}
	if got := opts.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestCommentToResponseNeverNilReplies(t *testing.T) {
	c := Comment{ID: 1, UserID: 7, Text: "hi"}
	resp := c.ToResponse(UserBrief{ID: 7}, nil)
	if resp.Replies == nil {
		t.Error("Replies must serialize as an empty array, not null")
	}
	if resp.ReplyCount != 0 {
		t.Errorf("ReplyCount = %d, want 0", resp.ReplyCount)
	}
}
