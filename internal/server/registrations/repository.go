package registrations

import "context"

type Repository interface {
	Create(ctx context.Context, r *Registration) (string, error)
	List(ctx context.Context) ([]*Summary, error)
	UpdatePaymentStatus(ctx context.Context, id string, status string) error
}
