package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"twitter-api/internal/domain"
	"twitter-api/internal/repository"
)

type UserRepository struct {
	conn *pgxpool.Pool
}

func NewUserRepository(conn *pgxpool.Pool) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) CreateUser(ctx context.Context, reg domain.UserRegister) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), 10)
	if err != nil {
		return nil, err
	}

	userID := uuid.NewString()

	var birth *time.Time
	if reg.BirthDate != nil {
		t := reg.BirthDate.Time
		birth = &t
	}

	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	user, err := scanUser(tx.QueryRow(ctx,
		`INSERT INTO users (id, email, first_name, last_name, birth_date) VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, email, first_name, last_name, birth_date, created_at, updated_at`,
		userID, reg.Email, reg.FirstName, reg.LastName, birth,
	))
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == pgerrcode.UniqueViolation {
				return nil, repository.ErrDuplicateUser
			}
		}
		return nil, err
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO user_auth (user_id, hashed_password) VALUES ($1, $2)",
		userID, hashedPassword,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT id, email, first_name, last_name, birth_date, created_at, updated_at FROM users ORDER BY created_at",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(r.conn.QueryRow(ctx,
		"SELECT id, email, first_name, last_name, birth_date, created_at, updated_at FROM users WHERE id = $1",
		userID,
	))
	if err == pgx.ErrNoRows {
		return nil, repository.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(r.conn.QueryRow(ctx,
		"DELETE FROM users WHERE id = $1 RETURNING id, email, first_name, last_name, birth_date, created_at, updated_at",
		userID,
	))
	if err == pgx.ErrNoRows {
		return nil, repository.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, userID string, reg domain.UserRegister) (*domain.User, error) {
	return nil, repository.ErrNotImplemented
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var birth *time.Time
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &birth, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if birth != nil {
		d := domain.Date{Time: *birth}
		user.BirthDate = &d
	}
	return &user, nil
}
