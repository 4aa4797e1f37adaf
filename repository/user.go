package repository

import (
	"errors"
	"time"

	"month_balance_ms/domain"

	"gorm.io/gorm"
)

type IUserRepository interface {
	GetByID(db *gorm.DB, id uint) (*domain.User, error)
	GetUserByEmail(db *gorm.DB, email string) (*domain.User, error)
	Create(db *gorm.DB, entity *domain.User) (*domain.User, error)
	Update(db *gorm.DB, entity *domain.User) error
	CountUsers(db *gorm.DB) (int64, error)
	CountUsersCreatedSince(db *gorm.DB, since time.Time) (int64, error)
	GetRecentUsers(db *gorm.DB, limit int) ([]domain.User, error)
	SearchUsers(db *gorm.DB, search string, page, pageSize int) ([]domain.User, int64, error)
}

type UserRepository struct {
}

func NewUserRepository() IUserRepository {
	return &UserRepository{}
}

func (u *UserRepository) GetByID(db *gorm.DB, id uint) (*domain.User, error) {
	var user domain.User
	err := db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserRepository) GetUserByEmail(db *gorm.DB, email string) (*domain.User, error) {
	var user domain.User
	err := db.Where("email=?", email).First(&user).Error
	if err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (u *UserRepository) Create(db *gorm.DB, entity *domain.User) (*domain.User, error) {
	return entity, db.Create(entity).Error
}

func (u *UserRepository) Update(db *gorm.DB, entity *domain.User) error {
	return db.Save(entity).Error
}

func (u *UserRepository) CountUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&domain.User{}).Count(&count).Error
	return count, err
}

func (u *UserRepository) CountUsersCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&domain.User{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (u *UserRepository) GetRecentUsers(db *gorm.DB, limit int) ([]domain.User, error) {
	var users []domain.User
	err := db.Order("created_at desc").Limit(limit).Find(&users).Error
	return users, err
}

func (u *UserRepository) SearchUsers(db *gorm.DB, search string, page, pageSize int) ([]domain.User, int64, error) {
	query := db.Model(&domain.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("lower(name) LIKE lower(?) OR lower(email) LIKE lower(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	err := query.Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}
