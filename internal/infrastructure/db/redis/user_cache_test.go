package redis

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

func TestKey(t *testing.T) {
	if got := key("abc"); got != "professional_user:abc" {
		t.Fatalf("key = %q", got)
	}
	if got := guardKey("abc"); got != "professional_user:abc:invalidated" {
		t.Fatalf("guardKey = %q", got)
	}
}

func TestNewUserCache_DefaultTTL(t *testing.T) {
	if got := NewUserCache(nil, 0).ttl; got != defaultUserTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultUserTTL, got)
	}
	if got := NewUserCache(nil, time.Minute).ttl; got != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", got)
	}
}

func TestCachedUser_NeverStoresPasswordHash(t *testing.T) {
	u := &domain.ProfessionalUser{ID: "u-1", Email: "a@example.com", PasswordHash: "$2a$10$secret", Active: true}

	raw, err := json.Marshal(fromDomain(u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Fatalf("password hash leaked into cache payload: %s", raw)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := cu.toDomain()
	if got.ID != "u-1" || !got.Active {
		t.Fatalf("unexpected round trip: %+v", got)
	}
	if got.PasswordHash != "" {
		t.Fatalf("expected empty password hash, got %q", got.PasswordHash)
	}
}

// Needs a live server: REDIS_TEST_ADDR=localhost:6379 go test ./...
func TestUserCache_SetAfterInvalidateIsIgnored(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	cache := NewUserCache(client, time.Minute)
	u := &domain.ProfessionalUser{ID: "guard-test-" + time.Now().Format("150405.000000"), Active: true}
	defer client.Del(ctx, key(u.ID), guardKey(u.ID))

	if err := cache.Set(ctx, u); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, err := cache.Get(ctx, u.ID); err != nil || !hit {
		t.Fatalf("expected hit before invalidate, hit=%v err=%v", hit, err)
	}

	if err := cache.Invalidate(ctx, u.ID); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if err := cache.Set(ctx, u); err != nil {
		t.Fatalf("Set after invalidate: %v", err)
	}
	if _, hit, err := cache.Get(ctx, u.ID); err != nil || hit {
		t.Fatalf("expected miss after invalidate, hit=%v err=%v", hit, err)
	}
}
