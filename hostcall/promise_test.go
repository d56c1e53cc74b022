package hostcall

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPromiseResolve(t *testing.T) {
	p := NewPromise[int]()
	p.Resolve(42)

	v, err := p.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestPromiseReject(t *testing.T) {
	p := NewPromise[string]()
	want := &CallError{Op: "alert", Reason: map[string]any{"errorMessage": "boom"}}
	p.Reject(want)

	_, err := p.Await(context.Background())
	var ce *CallError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CallError, got %v", err)
	}
	if ce.Op != "alert" {
		t.Fatalf("expected op alert, got %q", ce.Op)
	}
}

func TestPromiseSettlesOnce(t *testing.T) {
	p := NewPromise[int]()
	p.Resolve(1)
	p.Resolve(2)
	p.Reject(errors.New("late failure"))

	v, err := p.Await(context.Background())
	if err != nil {
		t.Fatalf("first settlement must win, got error %v", err)
	}
	if v != 1 {
		t.Fatalf("first settlement must win, got %d", v)
	}
}

func TestPromiseRejectThenResolve(t *testing.T) {
	p := NewPromise[int]()
	p.Reject(errors.New("failed"))
	p.Resolve(9)

	if _, err := p.Await(context.Background()); err == nil {
		t.Fatal("expected the rejection to stick")
	}
}

func TestAwaitHonorsContext(t *testing.T) {
	p := NewPromise[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	// A late settlement is still observable by other waiters.
	p.Resolve(7)
	v, err := p.Await(context.Background())
	if err != nil || v != 7 {
		t.Fatalf("expected 7 after settlement, got %d, %v", v, err)
	}
}

func TestResolvedAndRejected(t *testing.T) {
	v, err := Resolved("ok").Await(context.Background())
	if err != nil || v != "ok" {
		t.Fatalf("expected resolved value, got %q, %v", v, err)
	}

	if _, err := Rejected[string](errors.New("no")).Await(context.Background()); err == nil {
		t.Fatal("expected error from rejected promise")
	}
}

func TestCallErrorMessage(t *testing.T) {
	cases := []struct {
		name   string
		reason map[string]any
		want   string
	}{
		{"message", map[string]any{"errorMessage": "denied"}, "hostcall getAuthCode: denied"},
		{"code only", map[string]any{"error": 7}, "hostcall getAuthCode: error 7"},
		{"opaque", map[string]any{"detail": "x"}, "hostcall getAuthCode failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := &CallError{Op: "getAuthCode", Reason: tc.reason}
			if got := e.Error(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
