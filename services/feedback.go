package services

import (
	"time"

	"month_balance_ms/domain"
	"month_balance_ms/dtos/request"
	"month_balance_ms/dtos/response"
	"month_balance_ms/repository"

	"gorm.io/gorm"
)

type IFeedbackService interface {
	CreateFeedback(userID *uint, req *request.CreateFeedbackRequest) (*response.FeedbackDto, error)
	GetFeedbacks(page, pageSize int) (*response.FeedbackListResponse, error)
}

type FeedbackService struct {
	db           *gorm.DB
	feedbackRepo repository.IFeedbackRepository
}

func NewFeedbackService(db *gorm.DB, feedbackRepo repository.IFeedbackRepository) IFeedbackService {
	return &FeedbackService{db: db, feedbackRepo: feedbackRepo}
}

func (s *FeedbackService) CreateFeedback(userID *uint, req *request.CreateFeedbackRequest) (*response.FeedbackDto, error) {
	now := time.Now().UTC()
	feedback := &domain.UserFeedback{
		UserID:    userID,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Rating:    req.Rating,
		CreatedAt: &now,
	}
	if _, err := s.feedbackRepo.Create(s.db, feedback); err != nil {
		return nil, err
	}
	return feedbackDto(feedback), nil
}

func (s *FeedbackService) GetFeedbacks(page, pageSize int) (*response.FeedbackListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	feedbacks, total, err := s.feedbackRepo.List(s.db, page, pageSize)
	if err != nil {
		return nil, err
	}

	dtos := make([]response.FeedbackDto, 0, len(feedbacks))
	for i := range feedbacks {
		dtos = append(dtos, *feedbackDto(&feedbacks[i]))
	}

	return &response.FeedbackListResponse{
		Feedbacks:  dtos,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func feedbackDto(feedback *domain.UserFeedback) *response.FeedbackDto {
	createdAt := ""
	if feedback.CreatedAt != nil {
		createdAt = feedback.CreatedAt.UTC().Format(time.RFC3339)
	}
	return &response.FeedbackDto{
		Id:        feedback.ID,
		UserId:    feedback.UserID,
		Email:     feedback.Email,
		Subject:   feedback.Subject,
		Message:   feedback.Message,
		Rating:    feedback.Rating,
		IsRead:    feedback.IsRead,
		CreatedAt: createdAt,
	}
}
