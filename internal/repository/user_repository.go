package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"twitter-api/internal/domain"
)

// UserRepository stores users in a JSON array file.
type UserRepository struct {
	users *collection[domain.UserRecord]
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{users: newCollection[domain.UserRecord](path)}
}

func (r *UserRepository) CreateUser(ctx context.Context, reg domain.UserRegister) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), 10)
	if err != nil {
		return nil, err
	}

	record := domain.UserRecord{
		User: domain.User{
			Identifier:  domain.Identifier{ID: uuid.NewString()},
			UserProfile: reg.UserProfile,
			Timestamps:  domain.Timestamps{CreatedAt: time.Now()},
		},
		HashedPassword: string(hashedPassword),
	}

	err = r.users.update(func(records []domain.UserRecord) ([]domain.UserRecord, error) {
		return append(records, record), nil
	})
	if err != nil {
		return nil, err
	}

	return &record.User, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]domain.User, error) {
	records, err := r.users.all()
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(records))
	for i, record := range records {
		users[i] = record.User
	}
	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	records, err := r.users.all()
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == userID {
			user := record.User
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID string) (*domain.User, error) {
	var deleted *domain.User
	err := r.users.update(func(records []domain.UserRecord) ([]domain.UserRecord, error) {
		for i, record := range records {
			if record.ID == userID {
				user := record.User
				deleted = &user
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, userID string, reg domain.UserRegister) (*domain.User, error) {
	return nil, ErrNotImplemented
}
