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

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, username, email, password, role, profile_picture, level`

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO "UserData" (username, email, password, role, profile_picture, level)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.HashedPassword, user.Role, user.ProfilePicture, user.Level,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "userdata_email_key" {
				return fmt.Errorf("user with the same email already exists: %w", common.ErrConflict)
			}
			return fmt.Errorf("user with the same username already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM "UserData"`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("pgUserRepository.List: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	return users, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM "UserData" WHERE id = $1`, id)
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM "UserData" WHERE email = $1`, email)
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM "UserData" WHERE username = $1`, username)
}

func (r *pgUserRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	user := &model.User{}
	err := scanUser(r.db.QueryRowContext(ctx, query, arg), user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.findOne: %w", err)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner, u *model.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.Role, &u.ProfilePicture, &u.Level)
}
