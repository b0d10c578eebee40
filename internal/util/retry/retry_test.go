package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo_Success(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return nil
	}

	err := Do(context.Background(), operation)

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary error")
		}
		return nil
	}

	err := Do(context.Background(), operation, WithDelay(time.Millisecond))

	if err != nil {
		t.Errorf("Expected no error after retries, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got: %d", attempts)
	}
}

func TestDo_Exhausted(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func() error {
		attempts++
		return errors.New("persistent error")
	}

	err := Do(context.Background(), operation,
		WithMaxAttempts(4),
		WithDelay(time.Millisecond))

	if attempts != 4 {
		t.Errorf("Expected 4 attempts, got: %d", attempts)
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustedError, got: %v", err)
	}
	if exhausted.Attempts != 4 {
		t.Errorf("Expected ExhaustedError.Attempts = 4, got: %d", exhausted.Attempts)
	}
}

func TestDo_FatalStopsImmediately(t *testing.T) {
	t.Parallel()
	attempts := 0
	cause := errors.New("bad credentials")
	operation := func() error {
		attempts++
		return Fatal(cause)
	}

	err := Do(context.Background(), operation,
		WithMaxAttempts(5),
		WithDelay(time.Millisecond))

	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
	// The fatal wrapper must be stripped so callers see the original error.
	if !errors.Is(err, cause) {
		t.Errorf("Expected the original error, got: %v", err)
	}
	if IsFatal(err) {
		t.Error("Expected the returned error to be unwrapped from FatalError")
	}
}

func TestDo_FixedDelayByDefault(t *testing.T) {
	t.Parallel()
	var gaps []time.Duration
	last := time.Now()
	attempts := 0
	operation := func() error {
		now := time.Now()
		if attempts > 0 {
			gaps = append(gaps, now.Sub(last))
		}
		last = now
		attempts++
		return errors.New("still failing")
	}

	_ = Do(context.Background(), operation,
		WithMaxAttempts(3),
		WithDelay(20*time.Millisecond))

	for i, gap := range gaps {
		if gap > 100*time.Millisecond {
			t.Errorf("gap %d grew to %v; delay should stay fixed without a multiplier", i, gap)
		}
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	operation := func() error {
		attempts++
		cancel()
		return errors.New("failing")
	}

	err := Do(ctx, operation, WithMaxAttempts(10), WithDelay(time.Minute))

	if err == nil {
		t.Fatal("Expected error after cancellation, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt before cancellation, got: %d", attempts)
	}
}

func TestFatal_NilPassthrough(t *testing.T) {
	t.Parallel()
	if Fatal(nil) != nil {
		t.Error("Fatal(nil) should be nil")
	}
}
