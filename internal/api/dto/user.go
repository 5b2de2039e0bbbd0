package dto

import "time"

// UserDTO 用户资料
type UserDTO struct {
	UserID    *uint64    `json:"user_id,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Nickname  *string    `json:"nickname,omitempty" validate:"omitempty,min=1,max=15"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	Bio       *string    `json:"bio,omitempty" validate:"omitempty,max=200"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6,max=20"`
	Nickname string  `json:"nickname" binding:"required,min=1,max=15"`
	Bio      *string `json:"bio"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
