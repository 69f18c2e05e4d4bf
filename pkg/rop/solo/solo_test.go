package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/nullchain/pkg/rop"
)

func TestSwitch_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, Succeed(3), func(_ context.Context, v int) rop.Result[string] {
		return Succeed("x" + string(rune('0'+v)))
	})

	if !out.IsSuccess() || out.Result() != "x3" {
		t.Fatalf("expected success with x3, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestSwitch_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	called := false
	out := Switch(ctx, Fail[int](err), func(_ context.Context, v int) rop.Result[int] {
		called = true
		return Succeed(v)
	})

	if called {
		t.Fatalf("onSuccess should not be called when input is failure")
	}
	if !errors.Is(out.Err(), err) {
		t.Fatalf("expected failure 'boom', got: %v", out.Err())
	}
}

func TestTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("bad")

	out := Try(ctx, Succeed(1), func(_ context.Context, v int) (int, error) {
		return 0, err
	})

	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected failure 'bad', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestTry_RecoversPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Succeed(1), func(_ context.Context, v int) (int, error) {
		var m map[string]int
		m["x"] = v
		return v, nil
	})

	if !out.IsFailure() {
		t.Fatalf("expected failure from panic, got success=%v", out.IsSuccess())
	}
}

func TestTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Succeed(20), func(_ context.Context, v int) (int, error) {
		return v + 1, nil
	})

	if !out.IsSuccess() || out.Result() != 21 {
		t.Fatalf("expected success with 21, got: success=%v, val=%v", out.IsSuccess(), out.Result())
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var succeeded, failed int
	onSuccess := func(context.Context, int) { succeeded++ }
	onError := func(context.Context, error) { failed++ }

	DoubleTee(ctx, Succeed(1), onSuccess, onError)
	DoubleTee(ctx, Fail[int](errors.New("x")), onSuccess, onError)
	DoubleTee(ctx, Fail[int](errors.New("y")), nil, nil)

	if succeeded != 1 || failed != 1 {
		t.Fatalf("expected 1 success and 1 failure, got %d and %d", succeeded, failed)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(_ context.Context, v int) string { return "ok" }
	onError := func(_ context.Context, err error) string { return err.Error() }

	if got := Finally(ctx, Succeed(1), onSuccess, onError); got != "ok" {
		t.Fatalf("expected ok, got %s", got)
	}
	if got := Finally(ctx, Fail[int](errors.New("nope")), onSuccess, onError); got != "nope" {
		t.Fatalf("expected nope, got %s", got)
	}
}
