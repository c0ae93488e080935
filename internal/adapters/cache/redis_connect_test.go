package cache

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/viralforge/creator-match/internal/domain"
)

func TestConnectUnreachableRedis(t *testing.T) {
	t.Parallel()
	// Grab a port the OS just released so the dial is refused immediately.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := lis.Addr().String()
	_ = lis.Close()

	if _, err := Connect(context.Background(), addr); !errors.Is(err, domain.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestConnectRejectsMalformedURL(t *testing.T) {
	t.Parallel()
	_, err := Connect(context.Background(), "redis://bad:url:")
	if err == nil {
		t.Fatal("expected parse error for malformed redis url")
	}
	if errors.Is(err, domain.ErrDependencyUnavailable) {
		t.Fatalf("parse failures are config errors, got %v", err)
	}
}
