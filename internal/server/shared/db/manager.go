package db

import (
	"context"
	"database/sql"

	"github.com/rcnapps/ordinand/internal/server/admins"
	"github.com/rcnapps/ordinand/internal/server/refreshtokens"
	"github.com/rcnapps/ordinand/internal/server/registrations"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Admins() admins.Repository
	RefreshTokens() refreshtokens.Repository
	Registrations() registrations.Repository
}
