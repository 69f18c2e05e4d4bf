package proxy

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ib-77/nullchain/pkg/rop"
	"github.com/ib-77/nullchain/pkg/rop/core"
	"github.com/ib-77/nullchain/pkg/rop/solo"
)

// ResolveContext is Resolve with a context that is checked before each step.
// A done context makes the chain resolve to nil; a nil context is treated as
// context.Background().
func (c *Chain) ResolveContext(ctx context.Context) any {
	if ctx == nil {
		ctx = context.Background()
	}
	return solo.Finally(ctx, c.resolve(ctx),
		func(_ context.Context, v any) any { return v },
		func(context.Context, error) any { return nil })
}

// resolve drains the recorded operations into the current value and returns
// the outcome with the failure cause intact.
func (c *Chain) resolve(ctx context.Context) rop.Result[any] {
	ops := c.operations
	c.operations = nil

	result := solo.Succeed(c.current)
	step := 0
	for ; step < len(ops); step++ {
		op := ops[step]
		result = solo.Try(ctx, result, func(ctx context.Context, v any) (any, error) {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
			}
			return apply(v, op)
		})
		if !result.IsSuccess() {
			break
		}
	}

	if logger := core.ActiveLogger(ctx, c.settings); logger != nil {
		entry := logger.WithFields(logrus.Fields{
			"chain": c.id.String(),
			"steps": len(ops),
		})
		solo.DoubleTee(ctx, result,
			func(context.Context, any) {
				entry.Debug("chain resolved")
			},
			func(_ context.Context, err error) {
				entry.WithFields(logrus.Fields{
					"step": step,
					"op":   ops[step].String(),
				}).WithError(err).Debug("chain resolved to nil")
			})
	}

	if result.IsSuccess() {
		c.current = result.Result()
	} else {
		c.current = nil
	}
	return result
}

// As resolves c and asserts the value to T. It reports false when the chain
// resolves to nil or to a value of another type.
func As[T any](c *Chain) (T, bool) {
	ctx := context.Background()
	res := solo.Switch(ctx, c.resolve(ctx), func(_ context.Context, v any) rop.Result[T] {
		t, ok := v.(T)
		if !ok {
			return rop.Fail[T](fmt.Errorf("%w: %T", ErrTypeMismatch, v))
		}
		return rop.Success(t)
	})
	return res.Result(), res.IsSuccess()
}

// Or resolves c to a T, returning fallback when As would report false.
func Or[T any](c *Chain, fallback T) T {
	if v, ok := As[T](c); ok {
		return v
	}
	return fallback
}
