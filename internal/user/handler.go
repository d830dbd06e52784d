package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/auth"
	"github.com/saulo-duarte/menteviva-api/internal/config"
)

type Handler struct {
	service  Service
	tokenTTL time.Duration
}

func NewHandler(s Service, tokenTTL time.Duration) *Handler {
	return &Handler{service: s, tokenTTL: tokenTTL}
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, u *User) {
	token, err := auth.GenerateJWT(u.ID.String(), auth.RoleUser, h.tokenTTL)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to issue token")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	auth.SetSessionCookie(w, token, h.tokenTTL)
	config.JSON(w, status, AuthResponse{User: u, Token: token})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyRegistered):
			config.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrPasswordMismatch), errors.Is(err, ErrMissingFields):
			config.Error(w, http.StatusBadRequest, err.Error())
		default:
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.respondWithToken(w, r, http.StatusCreated, u)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.Login(r.Context(), dto.Email)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondWithToken(w, r, http.StatusOK, u)
}

func currentUserID(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), userID, dto)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, u)
}
