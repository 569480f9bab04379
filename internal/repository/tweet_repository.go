package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"twitter-api/internal/domain"
)

// TweetRepository stores tweets in a JSON array file. Each tweet carries a
// full copy of its author taken at post time.
type TweetRepository struct {
	tweets *collection[domain.Tweet]
}

func NewTweetRepository(path string) *TweetRepository {
	return &TweetRepository{tweets: newCollection[domain.Tweet](path)}
}

func (r *TweetRepository) CreateTweet(ctx context.Context, content string, author domain.User) (*domain.Tweet, error) {
	tweet := domain.Tweet{
		Identifier: domain.Identifier{ID: uuid.NewString()},
		Content:    content,
		Timestamps: domain.Timestamps{CreatedAt: time.Now()},
		CreatedBy:  author,
	}

	err := r.tweets.update(func(records []domain.Tweet) ([]domain.Tweet, error) {
		return append(records, tweet), nil
	})
	if err != nil {
		return nil, err
	}

	return &tweet, nil
}

func (r *TweetRepository) GetTweets(ctx context.Context) ([]domain.Tweet, error) {
	return r.tweets.all()
}

func (r *TweetRepository) GetTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	records, err := r.tweets.all()
	if err != nil {
		return nil, err
	}

	for _, tweet := range records {
		if tweet.ID == tweetID {
			t := tweet
			return &t, nil
		}
	}
	return nil, ErrTweetNotFound
}

func (r *TweetRepository) DeleteTweet(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	var deleted *domain.Tweet
	err := r.tweets.update(func(records []domain.Tweet) ([]domain.Tweet, error) {
		for i, tweet := range records {
			if tweet.ID == tweetID {
				t := tweet
				deleted = &t
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, ErrTweetNotFound
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *TweetRepository) UpdateTweet(ctx context.Context, tweetID, content string) (*domain.Tweet, error) {
	return nil, ErrNotImplemented
}
