package proxy

import (
	"errors"
	"strings"
)

var errBoom = errors.New("boom")

type counter struct {
	n int
}

func (c counter) Foo(x int) int { return x + 1 }

func (c *counter) Inc() *counter {
	c.n++
	return c
}

func (c counter) Value() int { return c.n }

func (c counter) Fail() (int, error) { return 0, errBoom }

func (c counter) Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errBoom
	}
	return a / b, nil
}

func (c counter) Check(ok bool) error {
	if !ok {
		return errBoom
	}
	return nil
}

func (c counter) Pair() (int, string) { return 1, "a" }

func (c counter) Sum(xs ...int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func (c counter) Join(sep string, parts ...string) string { return strings.Join(parts, sep) }

func (c counter) Panic() int { panic("boom") }

func (c counter) Nothing() {}

func (c counter) None() *counter { return nil }

func (c counter) Describe(m map[string]int) int { return len(m) }

func (c counter) Small(x int8) int8 { return x }

type address struct {
	City string `json:"city"`
}

type Base struct {
	ID int
}

type user struct {
	*Base
	Name      string   `json:"name"`
	Address   *address `json:"address,omitempty"`
	Tags      []string `json:"tags"`
	Hidden    string   `json:"-"`
	nickname  string
	Addresses []address
}

func (u user) Greeting(greet string) string { return greet + ", " + u.Name }

type bag map[string]any

func (b bag) GetProperty(name string) (any, bool) {
	v, ok := b["prop:"+name]
	return v, ok
}

func (b bag) GetIndex(key any) (any, bool) {
	s, ok := key.(string)
	if !ok {
		return nil, false
	}
	v, ok := b["idx:"+s]
	return v, ok
}

type label string

type record struct {
	Fields map[string]any
}

func (r *record) GetProperty(name string) (any, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

func (r *record) GetIndex(key any) (any, bool) {
	name, ok := key.(string)
	if !ok {
		return nil, false
	}
	return r.GetProperty(name)
}
