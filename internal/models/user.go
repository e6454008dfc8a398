package models

import "time"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`

	// Balance is a decimal string; all arithmetic goes through
	// shopspring/decimal to avoid float drift.
	Balance string `json:"balance"`

	IsAdmin  bool `json:"is_admin"`
	IsVip    bool `json:"is_vip"`
	IsBanned bool `json:"is_banned"`

	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// UserUpdate carries the fields an admin may patch on a user record.
// Nil fields are left untouched.
type UserUpdate struct {
	Balance   *string `json:"balance"`
	IsAdmin   *bool   `json:"is_admin"`
	IsVip     *bool   `json:"is_vip"`
	IsBanned  *bool   `json:"is_banned"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}
