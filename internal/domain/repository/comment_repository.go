package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"helpdesk/internal/common"
	"helpdesk/internal/domain/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByTicketID(ctx context.Context, ticketID int) ([]model.Comment, error)
	ListByUserID(ctx context.Context, userID int) ([]model.Comment, error)
	IncrementLikes(ctx context.Context, id int) (*model.Comment, error)
	IncrementDislikes(ctx context.Context, id int) (*model.Comment, error)
	DeleteByID(ctx context.Context, id int) error
}

type pgCommentRepository struct {
	db *sql.DB
}

func NewPgCommentRepository(db *sql.DB) CommentRepository {
	return &pgCommentRepository{db: db}
}

const commentColumns = `id, ticketid, userid, data, likes, dislikes`

func (r *pgCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `INSERT INTO "CommentData" (ticketid, userid, data, likes, dislikes)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		comment.TicketID, comment.UserID, comment.Data, comment.Likes, comment.Dislikes,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("pgCommentRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCommentRepository) ListByTicketID(ctx context.Context, ticketID int) ([]model.Comment, error) {
	return r.list(ctx, `SELECT `+commentColumns+` FROM "CommentData" WHERE ticketid = $1`, ticketID)
}

func (r *pgCommentRepository) ListByUserID(ctx context.Context, userID int) ([]model.Comment, error) {
	return r.list(ctx, `SELECT `+commentColumns+` FROM "CommentData" WHERE userid = $1`, userID)
}

// IncrementLikes bumps the counter in a single statement so concurrent
// likes cannot lose updates.
func (r *pgCommentRepository) IncrementLikes(ctx context.Context, id int) (*model.Comment, error) {
	query := `UPDATE "CommentData" SET likes = likes + 1 WHERE id = $1
	          RETURNING ` + commentColumns
	return r.updateOne(ctx, query, id)
}

func (r *pgCommentRepository) IncrementDislikes(ctx context.Context, id int) (*model.Comment, error) {
	query := `UPDATE "CommentData" SET dislikes = dislikes + 1 WHERE id = $1
	          RETURNING ` + commentColumns
	return r.updateOne(ctx, query, id)
}

func (r *pgCommentRepository) DeleteByID(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "CommentData" WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgCommentRepository.DeleteByID: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCommentRepository.DeleteByID: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgCommentRepository) updateOne(ctx context.Context, query string, id int) (*model.Comment, error) {
	comment := &model.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.TicketID, &comment.UserID, &comment.Data, &comment.Likes, &comment.Dislikes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCommentRepository.updateOne: %w", err)
	}
	return comment, nil
}

func (r *pgCommentRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgCommentRepository.list: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.TicketID, &c.UserID, &c.Data, &c.Likes, &c.Dislikes); err != nil {
			return nil, fmt.Errorf("pgCommentRepository.list: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCommentRepository.list: %w", err)
	}
	return comments, nil
}
