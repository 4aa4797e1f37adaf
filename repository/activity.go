package repository

import (
	"time"

	"month_balance_ms/domain"

	"gorm.io/gorm"
)

type IActivityRepository interface {
	Create(db *gorm.DB, activity *domain.UserActivity) (*domain.UserActivity, error)
	CountDistinctUsersSince(db *gorm.DB, since time.Time) (int64, error)
	GetActivityCounts(db *gorm.DB, since *time.Time) (map[domain.ActivityType]int64, error)
	GetRecentActivities(db *gorm.DB, limit int) ([]domain.UserActivity, error)
	CountLoginsByUser(db *gorm.DB, userID uint) (int64, error)
	GetLastLoginByUser(db *gorm.DB, userID uint) (*time.Time, error)
}

type ActivityRepository struct {
}

func NewActivityRepository() IActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Create(db *gorm.DB, activity *domain.UserActivity) (*domain.UserActivity, error) {
	return activity, db.Create(activity).Error
}

func (r *ActivityRepository) CountDistinctUsersSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&domain.UserActivity{}).
		Where("timestamp >= ?", since).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

func (r *ActivityRepository) GetActivityCounts(db *gorm.DB, since *time.Time) (map[domain.ActivityType]int64, error) {
	query := db.Model(&domain.UserActivity{})
	if since != nil {
		query = query.Where("timestamp >= ?", *since)
	}

	var rows []struct {
		ActivityType domain.ActivityType
		Count        int64
	}
	err := query.Select("activity_type, count(*) as count").
		Group("activity_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.ActivityType]int64, len(rows))
	for _, row := range rows {
		counts[row.ActivityType] = row.Count
	}
	return counts, nil
}

func (r *ActivityRepository) GetRecentActivities(db *gorm.DB, limit int) ([]domain.UserActivity, error) {
	var activities []domain.UserActivity
	err := db.Preload("User").
		Order("timestamp desc").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) CountLoginsByUser(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&domain.UserActivity{}).
		Where("user_id = ? AND activity_type = ?", userID, domain.ActivityUserLogin).
		Count(&count).Error
	return count, err
}

func (r *ActivityRepository) GetLastLoginByUser(db *gorm.DB, userID uint) (*time.Time, error) {
	var activity domain.UserActivity
	err := db.Where("user_id = ? AND activity_type = ?", userID, domain.ActivityUserLogin).
		Order("timestamp desc").
		First(&activity).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &activity.Timestamp, nil
}
