package admins

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/argon2"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/dbx"
	"github.com/rcnapps/ordinand/internal/server/auth"
	"github.com/rcnapps/ordinand/internal/server/config"
	"github.com/rcnapps/ordinand/internal/server/refreshtokens"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service handles admin account creation, login, and token rotation.
type Service struct {
	db                           *sql.DB
	admins                       Repository
	refreshTokens                refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewService constructs an admin Service using repositories and server config.
func NewService(db *sql.DB, admins Repository, tokens refreshtokens.Repository, cfg *config.Config) *Service {
	return &Service{
		db:                           db,
		admins:                       admins,
		refreshTokens:                tokens,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Create registers a new admin account with an argon2id-hashed password.
func (s *Service) Create(ctx context.Context, username string, password []byte) (*Admin, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("salt generation: %w", err)
	}

	admin := &Admin{UserName: username, Salt: salt, Hash: hashPassword(password, salt)}
	a, err := s.admins.Create(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}
	return a, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a new TokenPair.
func (s *Service) Login(ctx context.Context, username string, password []byte) (*TokenPair, error) {
	admin, err := s.admins.GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !s.checkPassword(admin, password) {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(ctx, admin.ID)
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.refreshTokens.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := refreshtokens.NewPostgresRepository(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		access, genErr := auth.GenerateToken(token.AdminID, s.jwtSecret, s.accessTokenValidityDuration)
		if genErr != nil {
			return common.ErrorInternal
		}
		refresh, genErr := common.MakeRandHexString(32)
		if genErr != nil {
			return common.ErrorInternal
		}
		if genErr := repoTx.Create(ctx, token.AdminID, refresh, s.refreshTokenValidityDuration); genErr != nil {
			return common.ErrorInternal
		}
		pair = &TokenPair{AccessToken: access, RefreshToken: refresh}
		return nil
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// VerifyAccessToken returns the admin id carried by a valid access token.
func (s *Service) VerifyAccessToken(token string) (string, error) {
	return auth.GetAdminIDFromToken(token, s.jwtSecret)
}

// --- helpers below ---

func hashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

func (s *Service) checkPassword(admin *Admin, candidate []byte) bool {
	return subtle.ConstantTimeCompare(admin.Hash, hashPassword(candidate, admin.Salt)) == 1
}

func (s *Service) generateTokenPair(ctx context.Context, adminID string) (*TokenPair, error) {
	access, err := auth.GenerateToken(adminID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.refreshTokens.Create(ctx, adminID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
