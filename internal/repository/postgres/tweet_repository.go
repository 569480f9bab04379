package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"twitter-api/internal/domain"
	"twitter-api/internal/repository"
)

type TweetRepository struct {
	conn *pgxpool.Pool
}

func NewTweetRepository(conn *pgxpool.Pool) *TweetRepository {
	return &TweetRepository{conn: conn}
}

func (r *TweetRepository) CreateTweet(ctx context.Context, content string, author domain.User) (*domain.Tweet, error) {
	snapshot, err := json.Marshal(author)
	if err != nil {
		return nil, err
	}

	tweet := domain.Tweet{
		Identifier: domain.Identifier{ID: uuid.NewString()},
		Content:    content,
		CreatedBy:  author,
	}
	err = r.conn.QueryRow(ctx,
		"INSERT INTO tweets (id, content, created_by) VALUES ($1, $2, $3) RETURNING created_at, updated_at",
		tweet.ID, content, snapshot,
	).Scan(&tweet.CreatedAt, &tweet.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &tweet, nil
}

func (r *TweetRepository) GetTweets(ctx context.Context) ([]domain.Tweet, error) {
	rows, err := r.conn.Query(ctx,
		"SELECT id, content, created_by, created_at, updated_at FROM tweets ORDER BY created_at",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tweets []domain.Tweet
	for rows.Next() {
		tweet, err := scanTweet(rows)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, *tweet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tweets, nil
}

func (r *TweetRepository) GetTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	tweet, err := scanTweet(r.conn.QueryRow(ctx,
		"SELECT id, content, created_by, created_at, updated_at FROM tweets WHERE id = $1",
		tweetID,
	))
	if err == pgx.ErrNoRows {
		return nil, repository.ErrTweetNotFound
	} else if err != nil {
		return nil, err
	}

	return tweet, nil
}

func (r *TweetRepository) DeleteTweet(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	tweet, err := scanTweet(r.conn.QueryRow(ctx,
		"DELETE FROM tweets WHERE id = $1 RETURNING id, content, created_by, created_at, updated_at",
		tweetID,
	))
	if err == pgx.ErrNoRows {
		return nil, repository.ErrTweetNotFound
	} else if err != nil {
		return nil, err
	}

	return tweet, nil
}

func (r *TweetRepository) UpdateTweet(ctx context.Context, tweetID, content string) (*domain.Tweet, error) {
	return nil, repository.ErrNotImplemented
}

func scanTweet(row pgx.Row) (*domain.Tweet, error) {
	var tweet domain.Tweet
	var snapshot []byte
	err := row.Scan(&tweet.ID, &tweet.Content, &snapshot, &tweet.CreatedAt, &tweet.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &tweet.CreatedBy); err != nil {
		return nil, err
	}
	return &tweet, nil
}
