package checkin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/auth"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
)

type Handler struct {
	service Service
	habits  habit.Service
}

func NewHandler(s Service, habits habit.Service) *Handler {
	return &Handler{service: s, habits: habits}
}

func (h *Handler) activeHabit(w http.ResponseWriter, r *http.Request) (*habit.Habit, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	active, err := h.habits.Active(r.Context(), userID)
	if err != nil {
		if errors.Is(err, habit.ErrHabitNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return nil, false
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return active, true
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	active, ok := h.activeHabit(w, r)
	if !ok {
		return
	}

	var dto CreateCheckinDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.service.Create(r.Context(), active.ID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCheckin) {
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	active, ok := h.activeHabit(w, r)
	if !ok {
		return
	}

	checkins, err := h.service.List(r.Context(), active.ID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if checkins == nil {
		checkins = []Checkin{}
	}

	config.JSON(w, http.StatusOK, checkins)
}
