package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"twitter-api/internal/domain"
	"twitter-api/internal/repository"
)

type TweetHandler struct {
	tweets repository.TweetStore
	users  repository.UserStore
}

func NewTweetHandler(tweets repository.TweetStore, users repository.UserStore) *TweetHandler {
	return &TweetHandler{tweets: tweets, users: users}
}

// Post creates a tweet. The payload names the author by ID; the stored tweet
// embeds a full copy of that user as of post time, so later changes to the
// user cannot alter it.
func (h *TweetHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterTweet
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := domain.Validate(req); err != nil {
		respondError(w, err)
		return
	}

	author, err := h.users.GetUserByID(r.Context(), req.CreatedBy)
	if err != nil {
		respondError(w, err)
		return
	}

	tweet, err := h.tweets.CreateTweet(r.Context(), req.Content, *author)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, tweet)
}

func (h *TweetHandler) List(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweets.GetTweets(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if tweets == nil {
		tweets = []domain.Tweet{}
	}
	respondJSON(w, http.StatusOK, tweets)
}

func (h *TweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	tweet, err := h.tweets.GetTweetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tweet)
}

func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tweet, err := h.tweets.DeleteTweet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tweet)
}

func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterTweet
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tweet, err := h.tweets.UpdateTweet(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tweet)
}
