package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/server/admins"
	"github.com/rcnapps/ordinand/internal/server/registrations"
)

type fakeAuth struct {
	loginPair *admins.TokenPair
	loginErr  error

	refreshPair *admins.TokenPair
	refreshErr  error
}

func (f *fakeAuth) Login(ctx context.Context, username string, password []byte) (*admins.TokenPair, error) {
	return f.loginPair, f.loginErr
}

func (f *fakeAuth) RefreshToken(ctx context.Context, refreshToken string) (*admins.TokenPair, error) {
	return f.refreshPair, f.refreshErr
}

func (f *fakeAuth) VerifyAccessToken(token string) (string, error) {
	if token == "good" {
		return "a1", nil
	}
	return "", common.ErrInvalidToken
}

type fakeRegService struct {
	listOut []*registrations.Summary
	listErr error

	paymentErr    error
	paymentID     string
	paymentStatus string
}

func (f *fakeRegService) List(ctx context.Context) ([]*registrations.Summary, error) {
	return f.listOut, f.listErr
}

func (f *fakeRegService) RecordPayment(ctx context.Context, id string, status string) error {
	f.paymentID = id
	f.paymentStatus = status
	return f.paymentErr
}

func newAdminServer(t *testing.T, auth *fakeAuth, svc *fakeRegService) *httptest.Server {
	t.Helper()
	h := NewAdminHandler(auth, svc, nopLogger{})
	r := chi.NewRouter()
	h.Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestAdminLogin_Success(t *testing.T) {
	auth := &fakeAuth{loginPair: &admins.TokenPair{AccessToken: "at", RefreshToken: "rt"}}
	srv := newAdminServer(t, auth, &fakeRegService{})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/login", map[string]string{"username": "root", "password": "pw"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	var got tokenResponse
	decodeBody(t, resp, &got)
	if got.AccessToken != "at" || got.RefreshToken != "rt" {
		t.Fatalf("unexpected tokens: %+v", got)
	}
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	auth := &fakeAuth{loginErr: common.ErrorUnauthorized}
	srv := newAdminServer(t, auth, &fakeRegService{})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/login", map[string]string{"username": "root", "password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAdminRefresh(t *testing.T) {
	auth := &fakeAuth{refreshPair: &admins.TokenPair{AccessToken: "at2", RefreshToken: "rt2"}}
	srv := newAdminServer(t, auth, &fakeRegService{})

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/admin/refresh", map[string]string{"refresh_token": "rt"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	var got tokenResponse
	decodeBody(t, resp, &got)
	if got.AccessToken != "at2" || got.RefreshToken != "rt2" {
		t.Fatalf("unexpected tokens: %+v", got)
	}

	auth.refreshPair, auth.refreshErr = nil, common.ErrRefreshTokenExpired
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/admin/refresh", map[string]string{"refresh_token": "stale"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	return bytes.NewReader(b)
}

func doAuthed(t *testing.T, method, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do error: %v", err)
	}
	return resp
}

func TestListRegistrations_RequiresToken(t *testing.T) {
	srv := newAdminServer(t, &fakeAuth{}, &fakeRegService{})

	resp := doAuthed(t, http.MethodGet, srv.URL+"/api/admin/registrations", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token: unexpected status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doAuthed(t, http.MethodGet, srv.URL+"/api/admin/registrations", "bad")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("invalid token: unexpected status %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListRegistrations_Success(t *testing.T) {
	svc := &fakeRegService{listOut: []*registrations.Summary{
		{ID: "r1", FullName: "John Doe", Email: "john@example.com", PaymentStatus: "pending", CreatedAt: time.Now()},
	}}
	srv := newAdminServer(t, &fakeAuth{}, svc)

	resp := doAuthed(t, http.MethodGet, srv.URL+"/api/admin/registrations", "good")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	var got []*registrations.Summary
	decodeBody(t, resp, &got)
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestRecordPayment(t *testing.T) {
	svc := &fakeRegService{}
	srv := newAdminServer(t, &fakeAuth{}, svc)
	url := srv.URL + "/api/admin/registrations/r1/payment"

	req, err := http.NewRequest(http.MethodPatch, url, jsonBody(t, map[string]string{"status": "paid"}))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	req.Header.Set("Authorization", "Bearer good")
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	resp.Body.Close()
	if svc.paymentID != "r1" || svc.paymentStatus != "paid" {
		t.Fatalf("unexpected call: %q %q", svc.paymentID, svc.paymentStatus)
	}
}

func TestRecordPayment_Errors(t *testing.T) {
	svc := &fakeRegService{paymentErr: common.ErrorNotFound}
	srv := newAdminServer(t, &fakeAuth{}, svc)

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/admin/registrations/missing/payment",
		jsonBody(t, map[string]string{"status": "paid"}))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	req.Header.Set("Authorization", "Bearer good")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	resp.Body.Close()

	// A blank status is rejected before the service runs.
	req, err = http.NewRequest(http.MethodPatch, srv.URL+"/api/admin/registrations/r1/payment",
		jsonBody(t, map[string]string{}))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	req.Header.Set("Authorization", "Bearer good")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	resp.Body.Close()
}
