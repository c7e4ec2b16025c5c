package domain

import "time"

// User is a platform account. Owned by the auth service; this module only
// resolves display fragments from it.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Avatar    string    `gorm:"column:avatar;type:varchar(500)" json:"avatar"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for users
func (User) TableName() string {
	return "users"
}

// UserBrief is the display-safe profile fragment embedded in reaction and
// comment responses.
type UserBrief struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ToBrief maps a user to its display fragment
func (u *User) ToBrief() UserBrief {
	return UserBrief{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}
