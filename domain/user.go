package domain

import "time"

type User struct {
	Id                   uint                 `gorm:"primaryKey" json:"id"`
	CreatedAt            *time.Time           `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            *time.Time           `gorm:"default:null" json:"updated_at"`
	Name                 string               `gorm:"size:200;not null" json:"name"`
	Email                string               `gorm:"size:200;not null;uniqueIndex" json:"email"`
	PasswordHash         string               `gorm:"size:200;not null" json:"-"`
	Avatar               string               `gorm:"size:500" json:"avatar"`
	NotificationsEnabled bool                 `gorm:"not null;default:true" json:"notifications_enabled"`
	Credentials          []WebAuthnCredential `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
