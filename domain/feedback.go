package domain

import "time"

type UserFeedback struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     *uint      `gorm:"index" json:"user_id"`
	Email      string     `gorm:"size:200;not null" json:"email"`
	Subject    string     `gorm:"size:200;not null" json:"subject"`
	Message    string     `gorm:"size:5000;not null" json:"message"`
	Rating     *int       `json:"rating"`
	CreatedAt  *time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsRead     bool       `gorm:"not null;default:false" json:"is_read"`
	AdminNotes string     `gorm:"size:2000" json:"admin_notes"`
	User       *User      `gorm:"foreignKey:UserID" json:"-"`
}

func (UserFeedback) TableName() string {
	return "user_feedbacks"
}
