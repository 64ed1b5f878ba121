package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

func testConfig(drivers ...string) config.Config {
	return config.Config{
		HTTPAddr:       ":0",
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		SessionTTL:     time.Hour,
		StoreDrivers:   drivers,
		StoreKey:       "footballAppData",
		PersistMode:    config.PersistSync,
		PersistTimeout: time.Second,
		SeedOnEmpty:    true,
	}
}

func serve(t *testing.T, a *App, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, a *App, username, password string) string {
	t.Helper()

	rec := serve(t, a, http.MethodPost, "/v1/sessions", "", `{"username":"`+username+`","password":"`+password+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("login %s: status %d body %s", username, rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return envelope.Data.Token
}

func TestNew_MemoryStoreServesSeed(t *testing.T) {
	a, err := New(context.Background(), testConfig(config.StoreMemory), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	if rec := serve(t, a, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz status %d", rec.Code)
	}

	token := login(t, a, "parent1", "parent123")
	rec := serve(t, a, http.MethodGet, "/v1/players", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list players status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Tommy Wilson") {
		t.Fatalf("expected seeded roster, got %s", rec.Body.String())
	}
}

func TestNew_FileStoreSurvivesRestart(t *testing.T) {
	cfg := testConfig(config.StoreFile)
	cfg.StoreFileDir = t.TempDir()

	first, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	coach := login(t, first, "coach", "coach123")
	rec := serve(t, first, http.MethodPost, "/v1/players", coach, `{"name":"Sam Lee","position":"Goalkeeper","number":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create player status %d body %s", rec.Code, rec.Body.String())
	}
	if err := first.Close(context.Background()); err != nil {
		t.Fatalf("close first app: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.StoreFileDir, "footballAppData.json")); err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}

	second, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("reopen app: %v", err)
	}
	t.Cleanup(func() { _ = second.Close(context.Background()) })

	parent := login(t, second, "parent1", "parent123")
	rec = serve(t, second, http.MethodGet, "/v1/players", parent, "")
	if !strings.Contains(rec.Body.String(), "Sam Lee") {
		t.Fatalf("expected persisted player after restart, got %s", rec.Body.String())
	}
}

func TestNew_Errors(t *testing.T) {
	t.Run("empty addr", func(t *testing.T) {
		cfg := testConfig(config.StoreMemory)
		cfg.HTTPAddr = ""
		if _, err := New(context.Background(), cfg, nil); err == nil {
			t.Fatalf("expected error for empty addr")
		}
	})

	t.Run("no stores", func(t *testing.T) {
		if _, err := New(context.Background(), testConfig(), nil); err == nil {
			t.Fatalf("expected error without snapshot stores")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := New(context.Background(), testConfig("s3"), nil); err == nil {
			t.Fatalf("expected error for unknown driver")
		}
	})

	t.Run("corrupt snapshot", func(t *testing.T) {
		cfg := testConfig(config.StoreFile)
		cfg.StoreFileDir = t.TempDir()
		path := filepath.Join(cfg.StoreFileDir, "footballAppData.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatalf("write corrupt snapshot: %v", err)
		}
		if _, err := New(context.Background(), cfg, nil); err == nil {
			t.Fatalf("expected error for corrupt snapshot")
		}
	})
}
