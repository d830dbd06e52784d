package assessment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/auth"
	"github.com/saulo-duarte/menteviva-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}

func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tests, err := h.service.List(r.Context(), userID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, tests)
}

func (h *Handler) GetTest(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusNotFound, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitAnswersDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Submit(r.Context(), userID, chi.URLParam(r, "id"), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrTestNotFound):
			config.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInvalidAnswers):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrRetakeTooSoon):
			config.Error(w, http.StatusConflict, err.Error())
		default:
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, result)
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	submissions, err := h.service.Submissions(r.Context(), userID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if submissions == nil {
		submissions = []Submission{}
	}
	config.JSON(w, http.StatusOK, submissions)
}
