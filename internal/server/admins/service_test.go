package admins

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/server/config"
	"github.com/rcnapps/ordinand/internal/server/refreshtokens"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
}

type fakeAdminsRepo struct {
	created   *Admin
	createErr error

	getOut *Admin
	getErr error
}

func (f *fakeAdminsRepo) Create(ctx context.Context, admin *Admin) (*Admin, error) {
	f.created = admin
	if f.createErr != nil {
		return nil, f.createErr
	}
	admin.ID = "a1"
	return admin, nil
}

func (f *fakeAdminsRepo) GetByUserName(ctx context.Context, username string) (*Admin, error) {
	return f.getOut, f.getErr
}

type fakeTokensRepo struct {
	createdFor   string
	createdToken string
	createErr    error

	findOut *refreshtokens.RefreshToken
	findErr error
}

func (f *fakeTokensRepo) Create(ctx context.Context, adminID string, token string, validity time.Duration) error {
	f.createdFor = adminID
	f.createdToken = token
	return f.createErr
}

func (f *fakeTokensRepo) Find(ctx context.Context, token string) (*refreshtokens.RefreshToken, error) {
	return f.findOut, f.findErr
}

func (f *fakeTokensRepo) Delete(ctx context.Context, token string) error { return nil }

func storedAdmin(password string) *Admin {
	salt := []byte("0123456789abcdef")
	return &Admin{
		ID:       "a1",
		UserName: "root",
		Salt:     salt,
		Hash:     hashPassword([]byte(password), salt),
	}
}

func TestCreate_HashesPassword(t *testing.T) {
	repo := &fakeAdminsRepo{}
	s := NewService(nil, repo, &fakeTokensRepo{}, testConfig())

	admin, err := s.Create(context.Background(), "root", []byte("s3cret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != "a1" {
		t.Fatalf("unexpected id: %q", admin.ID)
	}
	if len(repo.created.Salt) != 16 {
		t.Fatalf("expected a 16-byte salt, got %d", len(repo.created.Salt))
	}
	if len(repo.created.Hash) != 32 {
		t.Fatalf("expected a 32-byte hash, got %d", len(repo.created.Hash))
	}
	if string(repo.created.Hash) == "s3cret" {
		t.Fatal("password must not be stored in the clear")
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeAdminsRepo{getOut: storedAdmin("s3cret")}
	tokens := &fakeTokensRepo{}
	s := NewService(nil, repo, tokens, testConfig())

	pair, err := s.Login(context.Background(), "root", []byte("s3cret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a full token pair, got %+v", pair)
	}
	if tokens.createdFor != "a1" || tokens.createdToken != pair.RefreshToken {
		t.Fatalf("refresh token not persisted: %+v", tokens)
	}

	adminID, err := s.VerifyAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adminID != "a1" {
		t.Fatalf("unexpected admin id: %q", adminID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeAdminsRepo{getOut: storedAdmin("s3cret")}
	s := NewService(nil, repo, &fakeTokensRepo{}, testConfig())

	_, err := s.Login(context.Background(), "root", []byte("wrong"))
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &fakeAdminsRepo{getErr: common.ErrorNotFound}
	s := NewService(nil, repo, &fakeTokensRepo{}, testConfig())

	_, err := s.Login(context.Background(), "ghost", []byte("x"))
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestRefreshToken_Unknown(t *testing.T) {
	tokens := &fakeTokensRepo{findErr: common.ErrorNotFound}
	s := NewService(nil, &fakeAdminsRepo{}, tokens, testConfig())

	_, err := s.RefreshToken(context.Background(), "missing")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	tokens := &fakeTokensRepo{findOut: &refreshtokens.RefreshToken{
		AdminID: "a1",
		Token:   "old",
		Expires: time.Now().Add(-time.Minute),
	}}
	s := NewService(nil, &fakeAdminsRepo{}, tokens, testConfig())

	_, err := s.RefreshToken(context.Background(), "old")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
}

func TestRefreshToken_Rotates(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	tokens := &fakeTokensRepo{findOut: &refreshtokens.RefreshToken{
		AdminID: "a1",
		Token:   "old",
		Expires: time.Now().Add(time.Hour),
	}}
	s := NewService(db, &fakeAdminsRepo{}, tokens, testConfig())

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s*$`).
		WithArgs("old").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+refresh_tokens\b`).
		WithArgs("a1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pair, err := s.RefreshToken(context.Background(), "old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" || pair.RefreshToken == "old" {
		t.Fatalf("expected a rotated pair, got %+v", pair)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRefreshToken_RollsBackOnDeleteError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	tokens := &fakeTokensRepo{findOut: &refreshtokens.RefreshToken{
		AdminID: "a1",
		Token:   "old",
		Expires: time.Now().Add(time.Hour),
	}}
	s := NewService(db, &fakeAdminsRepo{}, tokens, testConfig())

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^\s*DELETE\s+FROM\s+refresh_tokens\b`).
		WithArgs("old").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	if _, err := s.RefreshToken(context.Background(), "old"); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
