package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"

	"intelliassist/internal/auth"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func callbackInput(state, code string) auth.CallbackInput {
	return auth.CallbackInput{State: state, Code: code}
}

func newTestConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/cb",
		Scopes:       []string{"scope"},
		Endpoint:     oauth2.Endpoint{AuthURL: "http://localhost/auth", TokenURL: tokenURL},
	}
}

func TestBegin(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		uc := New(mockLogger{}, nil, filepath.Join(t.TempDir(), "token.json"))
		_, err := uc.Begin(context.Background())
		if err == nil {
			t.Error("expected error when OAuth is not configured")
		}
	})

	t.Run("returns auth url with state", func(t *testing.T) {
		uc := New(mockLogger{}, newTestConfig("http://localhost/token"), filepath.Join(t.TempDir(), "token.json"))
		out, err := uc.Begin(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		u, err := url.Parse(out.AuthURL)
		if err != nil {
			t.Fatalf("invalid auth URL: %v", err)
		}
		if u.Query().Get("state") == "" {
			t.Error("auth URL missing state parameter")
		}
	})
}

func TestCallback(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "at", "refresh_token": "rt", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	t.Run("full flow", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		uc := New(mockLogger{}, newTestConfig(tokenServer.URL), tokenPath)

		out, err := uc.Begin(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		u, _ := url.Parse(out.AuthURL)
		state := u.Query().Get("state")

		err = uc.Callback(context.Background(), callbackInput(state, "auth-code"))
		if err != nil {
			t.Fatalf("callback failed: %v", err)
		}

		if _, err := os.Stat(tokenPath); err != nil {
			t.Errorf("token not persisted: %v", err)
		}

		status := uc.Status(context.Background())
		if !status.Authenticated {
			t.Error("expected authenticated after callback")
		}
		for _, svc := range []string{"calendar", "gmail", "tasks"} {
			if !status.Services[svc] {
				t.Errorf("expected %s service available", svc)
			}
		}

		// A second callback with the same state must fail
		err = uc.Callback(context.Background(), callbackInput(state, "auth-code"))
		if err == nil {
			t.Error("expected state to be single use")
		}
	})

	t.Run("invalid state", func(t *testing.T) {
		uc := New(mockLogger{}, newTestConfig(tokenServer.URL), filepath.Join(t.TempDir(), "token.json"))
		err := uc.Callback(context.Background(), callbackInput("bogus", "auth-code"))
		if !errors.Is(err, auth.ErrInvalidState) {
			t.Errorf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("missing code", func(t *testing.T) {
		uc := New(mockLogger{}, newTestConfig(tokenServer.URL), filepath.Join(t.TempDir(), "token.json"))
		err := uc.Callback(context.Background(), callbackInput("any", ""))
		if err == nil {
			t.Error("expected error for missing code")
		}
	})
}

func TestDisconnect(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "at", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	tokenPath := filepath.Join(t.TempDir(), "token.json")
	uc := New(mockLogger{}, newTestConfig(tokenServer.URL), tokenPath)

	out, _ := uc.Begin(context.Background())
	u, _ := url.Parse(out.AuthURL)
	if err := uc.Callback(context.Background(), callbackInput(u.Query().Get("state"), "code")); err != nil {
		t.Fatal(err)
	}

	if err := uc.Disconnect(context.Background()); err != nil {
		t.Fatalf("disconnect failed: %v", err)
	}

	if uc.Status(context.Background()).Authenticated {
		t.Error("expected unauthenticated after disconnect")
	}
	if _, err := os.Stat(tokenPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("token file not removed")
	}
}

func TestRestoreFromSavedToken(t *testing.T) {
	tokenPath := filepath.Join(t.TempDir(), "token.json")
	token := `{"access_token": "at", "refresh_token": "rt", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`
	if err := os.WriteFile(tokenPath, []byte(token), 0600); err != nil {
		t.Fatal(err)
	}

	uc := New(mockLogger{}, newTestConfig("http://localhost/token"), tokenPath)
	if !uc.Status(context.Background()).Authenticated {
		t.Error("expected session restored from saved token")
	}
}
