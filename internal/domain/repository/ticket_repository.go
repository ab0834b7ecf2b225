package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"helpdesk/internal/common"
	"helpdesk/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	List(ctx context.Context) ([]model.Ticket, error)
	ListByUserID(ctx context.Context, userID int) ([]model.Ticket, error)
}

type pgTicketRepository struct {
	db *sql.DB
}

func NewPgTicketRepository(db *sql.DB) TicketRepository {
	return &pgTicketRepository{db: db}
}

const ticketColumns = `id, userid, title, data, status, date_time`

func (r *pgTicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	query := `INSERT INTO "TicketData" (userid, title, data, status, date_time)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		ticket.UserID, ticket.Title, ticket.Data, ticket.Status, ticket.DateTime,
	).Scan(&ticket.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique title
			return fmt.Errorf("ticket with the same title already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgTicketRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTicketRepository) List(ctx context.Context) ([]model.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM "TicketData"`)
}

func (r *pgTicketRepository) ListByUserID(ctx context.Context, userID int) ([]model.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM "TicketData" WHERE userid = $1`, userID)
}

func (r *pgTicketRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgTicketRepository.list: %w", err)
	}
	defer rows.Close()

	tickets := []model.Ticket{}
	for rows.Next() {
		var t model.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Data, &t.Status, &t.DateTime); err != nil {
			return nil, fmt.Errorf("pgTicketRepository.list: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTicketRepository.list: %w", err)
	}
	return tickets, nil
}
