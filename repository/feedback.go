package repository

import (
	"month_balance_ms/domain"

	"gorm.io/gorm"
)

type IFeedbackRepository interface {
	Create(db *gorm.DB, feedback *domain.UserFeedback) (*domain.UserFeedback, error)
	CountUnread(db *gorm.DB) (int64, error)
	List(db *gorm.DB, page, pageSize int) ([]domain.UserFeedback, int64, error)
}

type FeedbackRepository struct {
}

func NewFeedbackRepository() IFeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(db *gorm.DB, feedback *domain.UserFeedback) (*domain.UserFeedback, error) {
	return feedback, db.Create(feedback).Error
}

func (r *FeedbackRepository) CountUnread(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&domain.UserFeedback{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

func (r *FeedbackRepository) List(db *gorm.DB, page, pageSize int) ([]domain.UserFeedback, int64, error) {
	var total int64
	if err := db.Model(&domain.UserFeedback{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var feedbacks []domain.UserFeedback
	err := db.Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&feedbacks).Error
	return feedbacks, total, err
}
