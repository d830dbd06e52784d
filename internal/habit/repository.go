package habit

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrHabitNotFound = errors.New("habit not found or not owned by user")

type Repository interface {
	Create(ctx context.Context, h *Habit) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Habit, error)
	ListAll(ctx context.Context) ([]Habit, error)
	// Delete removes the habit and every check-in recorded for it.
	// Returns ErrHabitNotFound when the habit does not exist or belongs to someone else.
	Delete(ctx context.Context, habitID, userID uuid.UUID) error
}
