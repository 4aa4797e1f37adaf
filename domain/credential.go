package domain

import "time"

// WebAuthnCredential is one registered authenticator bound to one user.
// CredentialID is unique across all users; Counter only ever increases
// after a successful authentication.
type WebAuthnCredential struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	CredentialID string     `gorm:"size:500;not null;uniqueIndex" json:"credential_id"`
	PublicKey    string     `gorm:"not null" json:"public_key"`
	Counter      int64      `gorm:"not null;default:0" json:"counter"`
	Transports   string     `gorm:"size:200" json:"transports"`
	CreatedAt    *time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUsedAt   *time.Time `gorm:"default:null" json:"last_used_at"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
}

func (WebAuthnCredential) TableName() string {
	return "webauthn_credentials"
}
