package service

import (
	"context"
	"fmt"

	"helpdesk/internal/common"
	"helpdesk/internal/domain/model"
	"helpdesk/internal/domain/repository"
)

type TicketService struct {
	ticketRepo repository.TicketRepository
}

func NewTicketService(ticketRepo repository.TicketRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo}
}

type CreateTicketRequest struct {
	UserID int    `json:"userid"`
	Title  string `json:"title" validate:"required"`
	Data   string `json:"data" validate:"required"`
}

func (s *TicketService) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	return s.ticketRepo.List(ctx)
}

func (s *TicketService) ListTicketsByUser(ctx context.Context, userID int) ([]model.Ticket, error) {
	tickets, err := s.ticketRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, fmt.Errorf("no tickets found: %w", common.ErrNotFound)
	}
	return tickets, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, req CreateTicketRequest) (*model.Ticket, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	ticket := model.NewTicket(req.UserID, req.Title, req.Data)
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
