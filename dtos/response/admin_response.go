package response

import "month_balance_ms/domain"

type AdminDashboardResponse struct {
	TotalUsers           int64                         `json:"total_users"`
	NewUsersToday        int64                         `json:"new_users_today"`
	NewUsersThisWeek     int64                         `json:"new_users_this_week"`
	NewUsersThisMonth    int64                         `json:"new_users_this_month"`
	ActiveUsersToday     int64                         `json:"active_users_today"`
	ActiveUsersThisWeek  int64                         `json:"active_users_this_week"`
	ActiveUsersThisMonth int64                         `json:"active_users_this_month"`
	UnreadFeedbacks      int64                         `json:"unread_feedbacks"`
	TopActivities        map[domain.ActivityType]int64 `json:"top_activities"`
	RecentUsers          []UserSummaryDto              `json:"recent_users"`
}

type UserListResponse struct {
	Users      []UserSummaryDto `json:"users"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

type FeedbackListResponse struct {
	Feedbacks  []FeedbackDto `json:"feedbacks"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
}

type FeedbackDto struct {
	Id        uint   `json:"id"`
	UserId    *uint  `json:"user_id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Rating    *int   `json:"rating"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
