package checkin

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create stamps CheckinDate with the store's clock.
	Create(ctx context.Context, c *Checkin) error
	// ListByHabit returns check-ins in insertion order.
	ListByHabit(ctx context.Context, habitID uuid.UUID) ([]Checkin, error)
}
