package repository

import (
	"context"

	"twitter-api/internal/domain"
)

// UserStore is implemented by the file-backed repository and the postgres
// repository.
type UserStore interface {
	CreateUser(ctx context.Context, reg domain.UserRegister) (*domain.User, error)
	GetUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, reg domain.UserRegister) (*domain.User, error)
}

type TweetStore interface {
	CreateTweet(ctx context.Context, content string, author domain.User) (*domain.Tweet, error)
	GetTweets(ctx context.Context) ([]domain.Tweet, error)
	GetTweetByID(ctx context.Context, id string) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, id string) (*domain.Tweet, error)
	UpdateTweet(ctx context.Context, id, content string) (*domain.Tweet, error)
}
