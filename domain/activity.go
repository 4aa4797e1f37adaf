package domain

import "time"

type ActivityType string

const (
	ActivityUserRegistered ActivityType = "UserRegistered"
	ActivityUserLogin      ActivityType = "UserLogin"

	ActivityMonthDataCreated ActivityType = "MonthDataCreated"
	ActivityMonthDataViewed  ActivityType = "MonthDataViewed"
	ActivityMonthDataUpdated ActivityType = "MonthDataUpdated"
	ActivityMonthDataDeleted ActivityType = "MonthDataDeleted"

	ActivityIncomeCreated     ActivityType = "IncomeCreated"
	ActivityIncomeUpdated     ActivityType = "IncomeUpdated"
	ActivityIncomeDeleted     ActivityType = "IncomeDeleted"
	ActivityIncomeTypeCreated ActivityType = "IncomeTypeCreated"
	ActivityIncomeTypeUpdated ActivityType = "IncomeTypeUpdated"
	ActivityIncomeTypeDeleted ActivityType = "IncomeTypeDeleted"

	ActivityExpenseCreated     ActivityType = "ExpenseCreated"
	ActivityExpenseUpdated     ActivityType = "ExpenseUpdated"
	ActivityExpenseDeleted     ActivityType = "ExpenseDeleted"
	ActivityExpenseTypeCreated ActivityType = "ExpenseTypeCreated"
	ActivityExpenseTypeUpdated ActivityType = "ExpenseTypeUpdated"
	ActivityExpenseTypeDeleted ActivityType = "ExpenseTypeDeleted"

	ActivityFeedbackSent       ActivityType = "FeedbackSent"
	ActivityAdminPanelAccessed ActivityType = "AdminPanelAccessed"
)

// UserActivity is an append-only audit record; rows are never updated or
// deleted by this service.
type UserActivity struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"not null;index" json:"user_id"`
	ActivityType ActivityType `gorm:"size:50;not null;index" json:"activity_type"`
	Timestamp    time.Time    `gorm:"not null;index" json:"timestamp"`
	IpAddress    string       `gorm:"size:50" json:"ip_address"`
	UserAgent    string       `gorm:"size:500" json:"user_agent"`
	Metadata     string       `json:"metadata"`
	User         User         `gorm:"foreignKey:UserID" json:"-"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}
