package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"twitter-api/internal/config"
	"twitter-api/internal/handler"
	"twitter-api/internal/repository"
	"twitter-api/internal/repository/postgres"
)

func main() {
	cfg := config.Load()

	var users repository.UserStore
	var tweets repository.TweetStore

	switch cfg.StorageDriver {
	case "file":
		users = repository.NewUserRepository(filepath.Join(cfg.DataDir, "users.json"))
		tweets = repository.NewTweetRepository(filepath.Join(cfg.DataDir, "tweets.json"))
	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logrus.Fatal("failed to connect database: ", err)
		}
		defer pool.Close()

		if err := postgres.CreateSchema(context.Background(), pool); err != nil {
			logrus.Fatal("failed to create schema: ", err)
		}

		users = postgres.NewUserRepository(pool)
		tweets = postgres.NewTweetRepository(pool)
	default:
		logrus.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler.NewRouter(users, tweets, cfg.CORSOrigin),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"addr":    cfg.Addr,
			"storage": cfg.StorageDriver,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Fatal("server error: ", err)
	}
	logrus.Info("server stopped")
}
