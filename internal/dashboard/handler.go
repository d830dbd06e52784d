package dashboard

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/auth"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// serve resolves the caller and writes whatever view load returns.
func serve[T any](w http.ResponseWriter, r *http.Request, load func(uuid.UUID) (T, error)) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	view, err := load(userID)
	if err != nil {
		if errors.Is(err, habit.ErrHabitNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Failed to build view")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(id uuid.UUID) (*Overview, error) { return h.service.Overview(r.Context(), id) })
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(id uuid.UUID) (*ReportResponse, error) { return h.service.Report(r.Context(), id) })
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(id uuid.UUID) (*HistoryResponse, error) { return h.service.History(r.Context(), id) })
}
