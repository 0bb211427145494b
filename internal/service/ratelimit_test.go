package service_test

import (
	"testing"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

func TestTokenBucket_BurstThenThrottle(t *testing.T) {
	// Refill rate low enough that no token returns within the test.
	tb := service.NewTokenBucket(0.001, 2, time.Minute)

	if !tb.Allow("a@example.com") || !tb.Allow("a@example.com") {
		t.Fatal("burst capacity not honored")
	}
	if tb.Allow("a@example.com") {
		t.Error("call allowed past an exhausted bucket")
	}
	if !tb.Allow("b@example.com") {
		t.Error("exhausting one key throttled another")
	}
}
