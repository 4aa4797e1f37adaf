package services

import (
	"time"

	"month_balance_ms/config"
	"month_balance_ms/domain"
	"month_balance_ms/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IAnalyticsService interface {
	TrackActivity(userID uint, activityType domain.ActivityType, ipAddress, userAgent string)
	GetTotalUsers() (int64, error)
	GetActiveUsers(since time.Time) (int64, error)
	GetNewUsers(since time.Time) (int64, error)
	GetTopActivities(since *time.Time) (map[domain.ActivityType]int64, error)
	GetRecentActivities(limit int) ([]domain.UserActivity, error)
}

// criticalActivities are always recorded, regardless of the detailed
// tracking flag, and additionally published to the event pipeline.
var criticalActivities = map[domain.ActivityType]bool{
	domain.ActivityUserRegistered: true,
	domain.ActivityUserLogin:      true,
	domain.ActivityFeedbackSent:   true,
}

type AnalyticsService struct {
	db           *gorm.DB
	activityRepo repository.IActivityRepository
	userRepo     repository.IUserRepository
	events       IActivityEventPublisher
	logger       *zap.Logger
}

func NewAnalyticsService(
	db *gorm.DB,
	activityRepo repository.IActivityRepository,
	userRepo repository.IUserRepository,
	events IActivityEventPublisher,
	logger *zap.Logger,
) IAnalyticsService {
	return &AnalyticsService{
		db:           db,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		events:       events,
		logger:       logger,
	}
}

// TrackActivity appends one audit record. It is called from detached
// goroutines on the response path, so every failure is logged and dropped;
// nothing is retried or surfaced.
func (s *AnalyticsService) TrackActivity(userID uint, activityType domain.ActivityType, ipAddress, userAgent string) {
	critical := criticalActivities[activityType]
	if !config.Conf.Application.Analytics.EnableDetailedTracking && !critical {
		return
	}

	activity := &domain.UserActivity{
		UserID:       userID,
		ActivityType: activityType,
		Timestamp:    time.Now().UTC(),
		IpAddress:    ipAddress,
		UserAgent:    userAgent,
	}
	if _, err := s.activityRepo.Create(s.db, activity); err != nil {
		s.logger.Error("failed to record user activity",
			zap.Uint("user_id", userID),
			zap.String("activity_type", string(activityType)),
			zap.Error(err))
		return
	}

	if critical && s.events != nil {
		_ = s.events.PublishActivityEvent(&ActivityEvent{
			UserID:       userID,
			ActivityType: activityType,
			Timestamp:    activity.Timestamp,
		})
	}
}

func (s *AnalyticsService) GetTotalUsers() (int64, error) {
	return s.userRepo.CountUsers(s.db)
}

func (s *AnalyticsService) GetActiveUsers(since time.Time) (int64, error) {
	return s.activityRepo.CountDistinctUsersSince(s.db, since)
}

func (s *AnalyticsService) GetNewUsers(since time.Time) (int64, error) {
	return s.userRepo.CountUsersCreatedSince(s.db, since)
}

func (s *AnalyticsService) GetTopActivities(since *time.Time) (map[domain.ActivityType]int64, error) {
	return s.activityRepo.GetActivityCounts(s.db, since)
}

func (s *AnalyticsService) GetRecentActivities(limit int) ([]domain.UserActivity, error) {
	return s.activityRepo.GetRecentActivities(s.db, limit)
}
