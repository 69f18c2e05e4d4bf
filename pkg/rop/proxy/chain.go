package proxy

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/ib-77/nullchain/pkg/rop/core"
)

// Chain records operations against a value until it is resolved.
// A Chain is not safe for concurrent use.
type Chain struct {
	id         uuid.UUID
	current    any
	settings   core.Settings
	operations []Operation
}

// New wraps value, which may be nil.
func New(value any) *Chain {
	return &Chain{
		id:       uuid.New(),
		current:  value,
		settings: core.Conf,
	}
}

func (c *Chain) ID() uuid.UUID {
	return c.id
}

// Get records a property read.
func (c *Chain) Get(name string) *Chain {
	c.operations = append(c.operations, GetOp{Name: name})
	return c
}

// Call records a method call. args are copied.
func (c *Chain) Call(name string, args ...any) *Chain {
	c.operations = append(c.operations, CallOp{Name: name, Args: slices.Clone(args)})
	return c
}

// Index records an indexed or keyed read.
func (c *Chain) Index(key any) *Chain {
	c.operations = append(c.operations, IndexOp{Key: key})
	return c
}

// Operations returns the operations recorded since the last resolve.
func (c *Chain) Operations() []Operation {
	return slices.Clone(c.operations)
}

func (c *Chain) Len() int {
	return len(c.operations)
}

// Resolve evaluates the recorded operations and returns the final value, or
// nil if any of them failed. The operations are consumed: resolving again
// without recording anything returns the same value, and operations recorded
// afterwards continue from it.
func (c *Chain) Resolve() any {
	return c.ResolveContext(context.Background())
}
