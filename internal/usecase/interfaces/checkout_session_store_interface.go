package interfaces

import (
	"context"

	"barbearia/internal/domain/entities"
)

// ICheckoutSessionStore keeps open checkout sessions between requests.
//
// Get returns a zero-value session (empty ID) when the session is unknown or expired.
type ICheckoutSessionStore interface {
	Get(ctx context.Context, id string) (entities.CheckoutSession, error)
	Save(ctx context.Context, s entities.CheckoutSession) error
	Delete(ctx context.Context, id string) error
}
