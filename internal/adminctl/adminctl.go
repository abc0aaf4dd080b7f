// Package adminctl implements the operator tool that creates admin accounts
// for the registration server.
package adminctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rcnapps/ordinand/internal/server/admins"
	"github.com/rcnapps/ordinand/internal/server/config"
	"github.com/rcnapps/ordinand/internal/server/shared/db"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// newRepositoryManager is a test seam for the database connection.
var newRepositoryManager = func(ctx context.Context, dsn string) (db.RepositoryManager, error) {
	return db.NewPostgresRepositoryManager(ctx, dsn)
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// Run creates an admin account with the given username, prompting for the
// password on the terminal.
func Run(ctx context.Context, cfg *config.Config, username string, w io.Writer) error {
	if username == "" {
		return errors.New("usage: adminctl -n <username>")
	}

	password, err := GetPassword(w)
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}
	if len(password) == 0 {
		return errors.New("password must not be empty")
	}

	rm, err := newRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer rm.Conn().Close()

	service := admins.NewService(rm.Conn(), rm.Admins(), rm.RefreshTokens(), cfg)
	admin, err := service.Create(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "admin %q created (id %s)\n", admin.UserName, admin.ID)
	return nil
}
