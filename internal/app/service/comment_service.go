package service

import (
	"context"
	"fmt"
	"strings"

	"helpdesk/internal/common"
	"helpdesk/internal/domain/model"
	"helpdesk/internal/domain/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

type CreateCommentRequest struct {
	TicketID int    `json:"ticketid"`
	UserID   int    `json:"userid"`
	Data     string `json:"data"`
}

func (s *CommentService) ListCommentsByTicket(ctx context.Context, ticketID int) ([]model.Comment, error) {
	comments, err := s.commentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, fmt.Errorf("no comments found: %w", common.ErrNotFound)
	}
	return comments, nil
}

func (s *CommentService) ListCommentsByUser(ctx context.Context, userID int) ([]model.Comment, error) {
	comments, err := s.commentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, fmt.Errorf("no comments found: %w", common.ErrNotFound)
	}
	return comments, nil
}

// CreateComment inserts a comment as-is. There is deliberately no existence
// check on ticketid or userid; references are weak.
func (s *CommentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(req.Data) == "" {
		return nil, fmt.Errorf("you need to write something: %w", common.ErrValidation)
	}

	comment := model.NewComment(req.TicketID, req.UserID, req.Data)
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) LikeComment(ctx context.Context, id int) (*model.Comment, error) {
	return s.commentRepo.IncrementLikes(ctx, id)
}

func (s *CommentService) DislikeComment(ctx context.Context, id int) (*model.Comment, error) {
	return s.commentRepo.IncrementDislikes(ctx, id)
}

func (s *CommentService) DeleteComment(ctx context.Context, id int) error {
	return s.commentRepo.DeleteByID(ctx, id)
}
