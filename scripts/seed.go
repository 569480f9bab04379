package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"twitter-api/internal/domain"
)

const (
	numUsers      = 50
	tweetsPerUser = 20
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	usersPath := filepath.Join(dataDir, "users.json")
	tweetsPath := filepath.Join(dataDir, "tweets.json")

	if len(os.Args) > 1 && os.Args[1] == "--clean" {
		writeCollection(usersPath, []domain.UserRecord{})
		writeCollection(tweetsPath, []domain.Tweet{})
		fmt.Println("collections reset")
		return
	}

	// One hash shared by every seeded user (cost 10 is ~100ms per call).
	hashedPw, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatal("bcrypt: ", err)
	}

	baseTime := time.Now().Add(-30 * 24 * time.Hour)
	span := 30 * 24 * time.Hour

	users := make([]domain.UserRecord, numUsers)
	for i := range users {
		birth := domain.NewDate(1990, time.January, 1+i%28)
		users[i] = domain.UserRecord{
			User: domain.User{
				Identifier: domain.Identifier{ID: uuid.NewString()},
				UserProfile: domain.UserProfile{
					Email:     fmt.Sprintf("user%04d@example.com", i),
					FirstName: fmt.Sprintf("First%04d", i),
					LastName:  fmt.Sprintf("Last%04d", i),
					BirthDate: &birth,
				},
				Timestamps: domain.Timestamps{CreatedAt: baseTime},
			},
			HashedPassword: string(hashedPw),
		}
	}

	totalTweets := numUsers * tweetsPerUser
	tweets := make([]domain.Tweet, totalTweets)
	for i := range tweets {
		userIdx := i % numUsers
		offset := time.Duration(float64(span) * float64(i) / float64(totalTweets))
		tweets[i] = domain.Tweet{
			Identifier: domain.Identifier{ID: uuid.NewString()},
			Content:    fmt.Sprintf("Tweet #%d from user%04d", i, userIdx),
			Timestamps: domain.Timestamps{CreatedAt: baseTime.Add(offset)},
			CreatedBy:  users[userIdx].User,
		}
	}

	writeCollection(usersPath, users)
	writeCollection(tweetsPath, tweets)

	fmt.Printf("seeded %d users and %d tweets into %s\n", numUsers, totalTweets, dataDir)
}

func writeCollection[T any](path string, records []T) {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		log.Fatal("marshal: ", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal("write: ", err)
	}
}
