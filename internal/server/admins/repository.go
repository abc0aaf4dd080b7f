package admins

import "context"

type Repository interface {
	Create(ctx context.Context, admin *Admin) (*Admin, error)
	GetByUserName(ctx context.Context, username string) (*Admin, error)
}
