package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"twitter-api/internal/domain"
	"twitter-api/internal/repository"
)

type UserHandler struct {
	store repository.UserStore
}

func NewUserHandler(store repository.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// Signup registers a user: validate the payload, hash the password, assign an
// ID and creation timestamp, append to the collection.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.UserRegister
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := domain.Validate(req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	respondError(w, repository.ErrNotImplemented)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.GetUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UserRegister
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.store.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
