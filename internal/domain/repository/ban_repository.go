package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"helpdesk/internal/common"
	"helpdesk/internal/domain/model"
)

type BanRepository interface {
	Create(ctx context.Context, ban *model.Ban) error
	List(ctx context.Context) ([]model.Ban, error)
	FindByID(ctx context.Context, id int) (*model.Ban, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteByID(ctx context.Context, id int) error
}

type pgBanRepository struct {
	db *sql.DB
}

func NewPgBanRepository(db *sql.DB) BanRepository {
	return &pgBanRepository{db: db}
}

func (r *pgBanRepository) Create(ctx context.Context, ban *model.Ban) error {
	query := `INSERT INTO "BanList" (id, email, reason) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, ban.ID, ban.Email, ban.Reason); err != nil {
		return fmt.Errorf("pgBanRepository.Create: %w", err)
	}
	return nil
}

func (r *pgBanRepository) List(ctx context.Context) ([]model.Ban, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, email, reason FROM "BanList"`)
	if err != nil {
		return nil, fmt.Errorf("pgBanRepository.List: %w", err)
	}
	defer rows.Close()

	bans := []model.Ban{}
	for rows.Next() {
		var b model.Ban
		if err := rows.Scan(&b.ID, &b.Email, &b.Reason); err != nil {
			return nil, fmt.Errorf("pgBanRepository.List: %w", err)
		}
		bans = append(bans, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgBanRepository.List: %w", err)
	}
	return bans, nil
}

func (r *pgBanRepository) FindByID(ctx context.Context, id int) (*model.Ban, error) {
	ban := &model.Ban{}
	err := r.db.QueryRowContext(ctx, `SELECT id, email, reason FROM "BanList" WHERE id = $1`, id).
		Scan(&ban.ID, &ban.Email, &ban.Reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgBanRepository.FindByID: %w", err)
	}
	return ban, nil
}

func (r *pgBanRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM "BanList" WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pgBanRepository.ExistsByEmail: %w", err)
	}
	return exists, nil
}

// DeleteByID removes every row carrying the id; ids are caller-chosen and
// not guaranteed unique.
func (r *pgBanRepository) DeleteByID(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "BanList" WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgBanRepository.DeleteByID: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgBanRepository.DeleteByID: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
