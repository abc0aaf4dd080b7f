package refreshtokens

import (
	"context"
	"time"
)

// RefreshToken is one stored refresh token row.
type RefreshToken struct {
	AdminID string
	Token   string
	Expires time.Time
}

type Repository interface {
	Create(ctx context.Context, adminID string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
