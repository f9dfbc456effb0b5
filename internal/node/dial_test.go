package node

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gordtool/gord/internal/options"
)

func TestReadCookie(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantUser string
		wantPass string
		wantErr  bool
	}{
		{"plain", "username:password", "username", "password", false},
		{"trailing_newline", "__cookie__:s3cret\n", "__cookie__", "s3cret", false},
		{"password_with_colon", "user:pa:ss", "user", "pa:ss", false},
		{"no_separator", "justonefield", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".cookie")
			if err := os.WriteFile(path, []byte(tt.contents), 0o600); err != nil {
				t.Fatal(err)
			}

			user, pass, err := readCookie(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readCookie() error = %v, wantErr %v", err, tt.wantErr)
			}
			if user != tt.wantUser || pass != tt.wantPass {
				t.Errorf("readCookie() = %q, %q, want %q, %q", user, pass, tt.wantUser, tt.wantPass)
			}
		})
	}
}

func TestReadCookieMissingFile(t *testing.T) {
	if _, _, err := readCookie(filepath.Join(t.TempDir(), ".cookie")); err == nil {
		t.Error("expected error for missing cookie file")
	}
}

func TestDialUnresolvablePlatformDir(t *testing.T) {
	o := &options.Options{
		Wallet:          options.DefaultWallet,
		DogecoinBaseDir: func() string { return "" },
	}

	_, err := Dial(o)
	var cfgErr *options.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestDialUnreadableCookie(t *testing.T) {
	o := &options.Options{
		Wallet:     options.DefaultWallet,
		CookiePath: filepath.Join(t.TempDir(), ".cookie"),
	}

	_, err := Dial(o)
	var connErr *ConnectError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectError, got %v", err)
	}
	if connErr.CookiePath != o.CookiePath {
		t.Errorf("ConnectError cookie path = %q, want %q", connErr.CookiePath, o.CookiePath)
	}
	if connErr.Endpoint != o.RPCURL() {
		t.Errorf("ConnectError endpoint = %q, want %q", connErr.Endpoint, o.RPCURL())
	}
}

func TestDialMalformedCookie(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cookie")
	if err := os.WriteFile(path, []byte("no separator here"), 0o600); err != nil {
		t.Fatal(err)
	}

	o := &options.Options{Wallet: options.DefaultWallet, CookiePath: path}

	_, err := Dial(o)
	var connErr *ConnectError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectError, got %v", err)
	}
}
