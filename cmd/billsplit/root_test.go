package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/config"
	pb "github.com/mmynk/billsplit/pkg/proto"
	"github.com/mmynk/billsplit/pkg/proto/protoconnect"
)

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "tui"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestAddrFlagExists(t *testing.T) {
	flag := serveCmd.Flags().Lookup("addr")
	if flag == nil {
		t.Fatal("--addr flag not found")
	}
	if flag.DefValue != "" {
		t.Errorf("--addr default = %q, want empty", flag.DefValue)
	}
}

func TestPersistentFlagsExist(t *testing.T) {
	for _, name := range []string{"avatar-url", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	origAvatar, origLevel := avatarURL, logLevel
	defer func() { avatarURL, logLevel = origAvatar, origLevel }()

	avatarURL = "https://example.com/a.png"
	logLevel = "debug"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.AvatarURL != "https://example.com/a.png" {
		t.Errorf("AvatarURL = %q", cfg.AvatarURL)
	}
	if cfg.LogLevel.String() != "DEBUG" {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	origLevel := logLevel
	defer func() { logLevel = origLevel }()

	logLevel = "chatty"
	if _, err := loadConfig(); err == nil {
		t.Error("expected error for invalid --log-level")
	}
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.0", "none", "unknown")
	if got := versionTemplate(); got != "billsplit 1.2.0\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.0", "abc123", "2026-01-01")
	if got := versionTemplate(); !strings.Contains(got, "commit: abc123") {
		t.Errorf("versionTemplate() = %q, want commit line", got)
	}
}

func TestServeHandler(t *testing.T) {
	h, err := newServeHandler(config.Default())
	if err != nil {
		t.Fatalf("newServeHandler failed: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "You owe Clark 7$") {
		t.Error("page does not list seeded friends")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/friends/933372/select", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("select status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", rec.Code)
	}
	body, _ = io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "billsplit_friends_added_total") {
		t.Error("metrics endpoint missing widget counters")
	}
}

func TestServeHandler_FriendService(t *testing.T) {
	h, err := newServeHandler(config.Default())
	if err != nil {
		t.Fatalf("newServeHandler failed: %v", err)
	}
	server := httptest.NewServer(h)
	defer server.Close()

	client := protoconnect.NewFriendServiceClient(http.DefaultClient, server.URL)
	resp, err := client.AddFriend(context.Background(), connect.NewRequest(&pb.AddFriendRequest{Name: "Mia"}))
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	if !resp.Msg.GetAdded() || len(resp.Msg.GetState().GetFriends()) != 4 {
		t.Errorf("unexpected response: %v", resp.Msg)
	}
}
