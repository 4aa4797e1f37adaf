package response

import (
	"time"

	"month_balance_ms/domain"
)

type UserDto struct {
	Id                   uint   `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Avatar               string `json:"avatar"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

func NewUserDto(user *domain.User) *UserDto {
	return &UserDto{
		Id:                   user.Id,
		Name:                 user.Name,
		Email:                user.Email,
		Avatar:               user.Avatar,
		NotificationsEnabled: user.NotificationsEnabled,
	}
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  *UserDto `json:"user"`
}

type UserSummaryDto struct {
	Id          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	CreatedAt   *time.Time `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
	TotalLogins int64      `json:"total_logins"`
	IsActive    bool       `json:"is_active"`
}
