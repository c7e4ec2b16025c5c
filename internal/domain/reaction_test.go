package domain

import "testing"

func TestReactionKindValid(t *testing.T) {
	tests := []struct {
		name  string
		kind  ReactionKind
		valid bool
	}{
		{"happy", ReactionHappy, true},
		{"sad", ReactionSad, true},
		{"angry", ReactionAngry, true},
		{"hug", ReactionHug, true},
		{"wow", ReactionWow, true},
		{"like", ReactionLike, true},
		{"empty", ReactionKind(""), false},
		{"unknown", ReactionKind("meh"), false},
		{"case sensitive", ReactionKind("Like"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Valid(); got != tt.valid {
				t.Errorf("Valid(%q) = %v, want %v", tt.kind, got, tt.valid)
			}
		})
	}
}

func TestContentTypeValid(t *testing.T) {
	if !ContentTypePost.Valid() || !ContentTypeReel.Valid() {
		t.Error("post and reel must be valid content types")
	}
	if ContentType("story").Valid() || ContentType("").Valid() {
		t.Error("unknown content types must be invalid")
	}
}

func TestContentTypeMaxCommentLength(t *testing.T) {
	if got := ContentTypePost.MaxCommentLength(); got != MaxPostCommentLength {
		t.Errorf("post cap = %d, want %d", got, MaxPostCommentLength)
	}
	if got := ContentTypeReel.MaxCommentLength(); got != MaxReelCommentLength {
		t.Errorf("reel cap = %d, want %d", got, MaxReelCommentLength)
	}
}
