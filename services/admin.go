package services

import (
	"time"

	"month_balance_ms/domain"
	"month_balance_ms/dtos/response"
	"month_balance_ms/repository"

	"gorm.io/gorm"
)

type IAdminService interface {
	GetDashboard() (*response.AdminDashboardResponse, error)
	GetUsers(search string, page, pageSize int) (*response.UserListResponse, error)
}

type AdminService struct {
	db           *gorm.DB
	userRepo     repository.IUserRepository
	activityRepo repository.IActivityRepository
	feedbackRepo repository.IFeedbackRepository
	analytics    IAnalyticsService
}

func NewAdminService(
	db *gorm.DB,
	userRepo repository.IUserRepository,
	activityRepo repository.IActivityRepository,
	feedbackRepo repository.IFeedbackRepository,
	analytics IAnalyticsService,
) IAdminService {
	return &AdminService{
		db:           db,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		feedbackRepo: feedbackRepo,
		analytics:    analytics,
	}
}

func (s *AdminService) GetDashboard() (*response.AdminDashboardResponse, error) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	totalUsers, err := s.analytics.GetTotalUsers()
	if err != nil {
		return nil, err
	}

	newToday, err := s.analytics.GetNewUsers(today)
	if err != nil {
		return nil, err
	}
	newWeek, err := s.analytics.GetNewUsers(weekAgo)
	if err != nil {
		return nil, err
	}
	newMonth, err := s.analytics.GetNewUsers(monthAgo)
	if err != nil {
		return nil, err
	}

	activeToday, err := s.analytics.GetActiveUsers(today)
	if err != nil {
		return nil, err
	}
	activeWeek, err := s.analytics.GetActiveUsers(weekAgo)
	if err != nil {
		return nil, err
	}
	activeMonth, err := s.analytics.GetActiveUsers(monthAgo)
	if err != nil {
		return nil, err
	}

	unread, err := s.feedbackRepo.CountUnread(s.db)
	if err != nil {
		return nil, err
	}

	topActivities, err := s.analytics.GetTopActivities(&monthAgo)
	if err != nil {
		return nil, err
	}

	recentUsers, err := s.userRepo.GetRecentUsers(s.db, 5)
	if err != nil {
		return nil, err
	}
	summaries, err := s.summarize(recentUsers)
	if err != nil {
		return nil, err
	}

	return &response.AdminDashboardResponse{
		TotalUsers:           totalUsers,
		NewUsersToday:        newToday,
		NewUsersThisWeek:     newWeek,
		NewUsersThisMonth:    newMonth,
		ActiveUsersToday:     activeToday,
		ActiveUsersThisWeek:  activeWeek,
		ActiveUsersThisMonth: activeMonth,
		UnreadFeedbacks:      unread,
		TopActivities:        topActivities,
		RecentUsers:          summaries,
	}, nil
}

func (s *AdminService) GetUsers(search string, page, pageSize int) (*response.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.userRepo.SearchUsers(s.db, search, page, pageSize)
	if err != nil {
		return nil, err
	}
	summaries, err := s.summarize(users)
	if err != nil {
		return nil, err
	}

	return &response.UserListResponse{
		Users:      summaries,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *AdminService) summarize(users []domain.User) ([]response.UserSummaryDto, error) {
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)

	summaries := make([]response.UserSummaryDto, 0, len(users))
	for _, user := range users {
		lastLogin, err := s.activityRepo.GetLastLoginByUser(s.db, user.Id)
		if err != nil {
			return nil, err
		}
		totalLogins, err := s.activityRepo.CountLoginsByUser(s.db, user.Id)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, response.UserSummaryDto{
			Id:          user.Id,
			Name:        user.Name,
			Email:       user.Email,
			CreatedAt:   user.CreatedAt,
			LastLoginAt: lastLogin,
			TotalLogins: totalLogins,
			IsActive:    lastLogin != nil && lastLogin.After(weekAgo),
		})
	}
	return summaries, nil
}
