package insight

import (
	"net/http"

	"github.com/saulo-duarte/menteviva-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetPhrase(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.MotivationalPhrase(r.Context()))
}
