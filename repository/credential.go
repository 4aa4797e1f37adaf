package repository

import (
	"time"

	"month_balance_ms/domain"

	"gorm.io/gorm"
)

type ICredentialRepository interface {
	GetByCredentialID(db *gorm.DB, credentialID string) (*domain.WebAuthnCredential, error)
	GetByUserID(db *gorm.DB, userID uint) ([]domain.WebAuthnCredential, error)
	Create(db *gorm.DB, credential *domain.WebAuthnCredential) (*domain.WebAuthnCredential, error)
	CredentialExists(db *gorm.DB, credentialID string) (bool, error)
	UpdateCounter(db *gorm.DB, credentialID string, counter int64, lastUsedAt time.Time) (bool, error)
}

type CredentialRepository struct {
}

func NewCredentialRepository() ICredentialRepository {
	return &CredentialRepository{}
}

func (r *CredentialRepository) GetByCredentialID(db *gorm.DB, credentialID string) (*domain.WebAuthnCredential, error) {
	var credential domain.WebAuthnCredential
	err := db.Preload("User").
		Where("credential_id = ?", credentialID).
		First(&credential).Error
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

func (r *CredentialRepository) GetByUserID(db *gorm.DB, userID uint) ([]domain.WebAuthnCredential, error) {
	var credentials []domain.WebAuthnCredential
	err := db.Where("user_id = ?", userID).Find(&credentials).Error
	return credentials, err
}

func (r *CredentialRepository) Create(db *gorm.DB, credential *domain.WebAuthnCredential) (*domain.WebAuthnCredential, error) {
	return credential, db.Create(credential).Error
}

func (r *CredentialRepository) CredentialExists(db *gorm.DB, credentialID string) (bool, error) {
	var count int64
	err := db.Model(&domain.WebAuthnCredential{}).
		Where("credential_id = ?", credentialID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateCounter persists the new signature counter and last-used time as a
// single conditional update. The counter guard in the WHERE clause rejects
// stale or concurrent duplicate assertions; callers must treat a false
// return as a replay.
func (r *CredentialRepository) UpdateCounter(db *gorm.DB, credentialID string, counter int64, lastUsedAt time.Time) (bool, error) {
	result := db.Model(&domain.WebAuthnCredential{}).
		Where("credential_id = ? AND counter < ?", credentialID, counter).
		Updates(map[string]interface{}{
			"counter":      counter,
			"last_used_at": lastUsedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
