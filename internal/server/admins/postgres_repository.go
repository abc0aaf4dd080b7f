// Package admins manages operator accounts: storage, password verification,
// and token issuance for the admin surface.
package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/dbx"
)

// PostgresRepository implements admin account storage over dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new admin account and returns it with the assigned id.
func (r *PostgresRepository) Create(ctx context.Context, admin *Admin) (*Admin, error) {
	query := `
		INSERT INTO admins (username, salt, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, admin.UserName, admin.Salt, admin.Hash).Scan(&admin.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return admin, nil
}

// GetByUserName returns the admin account for username, or
// common.ErrorNotFound.
func (r *PostgresRepository) GetByUserName(ctx context.Context, username string) (*Admin, error) {
	query := `
		SELECT id, username, salt, password_hash
		FROM admins
		WHERE username = $1
	`
	admin := &Admin{}
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&admin.ID, &admin.UserName, &admin.Salt, &admin.Hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return admin, nil
}
