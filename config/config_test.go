package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kbukum/apikit/auth"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
base_url: https://api.example.com
timeout: 10s
headers:
  X-Client: apikit
params:
  version: "2"
auth:
  type: header
  token: secret
  realm: Token
logging:
  level: warn
  format: json
`)

	f, err := Load(path, LoaderConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BaseURL != "https://api.example.com" {
		t.Errorf("unexpected base_url %q", f.BaseURL)
	}
	if f.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout %v", f.Timeout)
	}
	if f.Headers["X-Client"] != "apikit" {
		t.Errorf("unexpected headers %v", f.Headers)
	}
	if f.Auth.Type != AuthHeader || f.Auth.Token != "secret" {
		t.Errorf("unexpected auth %+v", f.Auth)
	}
	if f.Logging.Level != "warn" {
		t.Errorf("unexpected logging level %q", f.Logging.Level)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
base_url: https://api.example.com
`)
	os.Setenv("APIKIT_BASE_URL", "https://other.example.com")
	defer os.Unsetenv("APIKIT_BASE_URL")

	f, err := Load(path, LoaderConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BaseURL != "https://other.example.com" {
		t.Errorf("expected env override, got %q", f.BaseURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "APIKIT_BASE_URL=https://fromenvfile.example.com\n")
	path := writeFile(t, dir, "config.yml", `
base_url: https://api.example.com
`)

	f, err := Load(path, LoaderConfig{EnvFile: envPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Unsetenv("APIKIT_BASE_URL")
	if f.BaseURL != "https://fromenvfile.example.com" {
		t.Errorf("expected .env override, got %q", f.BaseURL)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "base_url: not-a-url\n")
	if _, err := Load(path, LoaderConfig{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml"), LoaderConfig{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_AuthRequirements(t *testing.T) {
	tests := []struct {
		name string
		auth AuthFile
	}{
		{"basic without username", AuthFile{Type: AuthBasic}},
		{"header without token", AuthFile{Type: AuthHeader}},
		{"query without parameter", AuthFile{Type: AuthQuery, Token: "tok"}},
		{"jwt without secret", AuthFile{Type: AuthJWT}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{BaseURL: "https://api.example.com", Auth: tt.auth}
			f.ApplyDefaults()
			if err := f.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBuild(t *testing.T) {
	f := &File{
		BaseURL: "https://api.example.com",
		Auth:    AuthFile{Type: AuthQuery, Parameter: "apikey", Token: "secret"},
	}
	f.ApplyDefaults()
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := f.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != f.BaseURL {
		t.Errorf("unexpected base URL %q", cfg.BaseURL)
	}
	qp, ok := cfg.Authentication.(auth.QueryParameter)
	if !ok {
		t.Fatalf("expected query parameter auth, got %T", cfg.Authentication)
	}
	if qp.Parameter != "apikey" || qp.Token != "secret" {
		t.Errorf("unexpected auth %+v", qp)
	}
	if cfg.ResponseHandler == nil || cfg.RequestFormatter == nil {
		t.Error("expected JSON handler and formatter to be set")
	}
}

func TestBuild_JWT(t *testing.T) {
	f := &File{
		BaseURL: "https://api.example.com",
		Auth:    AuthFile{Type: AuthJWT, Secret: "topsecret", Issuer: "svc", TTL: time.Minute},
	}
	f.ApplyDefaults()
	cfg, err := f.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cfg.Authentication.(*auth.JWT); !ok {
		t.Fatalf("expected jwt auth, got %T", cfg.Authentication)
	}
}
