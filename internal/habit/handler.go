package habit

import (
	"encoding/json"
	"errors"
	"net/http"

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidHabit):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrHabitAlreadyActive):
			config.Error(w, http.StatusConflict, err.Error())
		default:
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, ToResponse(created))
}

func (h *Handler) GetActive(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	active, err := h.service.Active(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, ToResponse(active))
}

func (h *Handler) ResetActive(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Reset(r.Context(), userID); err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
