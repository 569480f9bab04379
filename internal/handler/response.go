package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"twitter-api/internal/domain"
	"twitter-api/internal/repository"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResponse{Code: status, Message: message})
}

// respondError maps domain and repository errors onto the HTTP error
// taxonomy: validation 400, not-found and missing storage 404, duplicates
// 409, unimplemented operations 501, everything else 500.
func respondError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "validation failed",
			Fields:  verr.Fields,
		})
	case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrTweetNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrStorageMissing):
		respondMessage(w, http.StatusNotFound, "File doesn't exist")
	case errors.Is(err, repository.ErrDuplicateUser):
		respondMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrNotImplemented):
		respondMessage(w, http.StatusNotImplemented, "not implemented")
	default:
		logrus.WithError(err).Error("unhandled internal error")
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
