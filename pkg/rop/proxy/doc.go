// Package proxy provides a deferred, nil-safe access chain over an arbitrary
// value: property reads, method calls and indexed reads are recorded on a
// Chain and evaluated later, in order, by a single Resolve.
//
// Any failing step (missing method, out of range index, missing map key,
// call on nil, a panicking method) stops the evaluation and Resolve returns
// nil. Missing properties and properties read off nil are not failures, they
// simply produce nil for the next step.
//
//	city := proxy.New(order).
//		Get("Customer").
//		Get("Addresses").
//		Index(0).
//		Call("City").
//		Resolve()
//
// Key operations:
// - New: wrap a value
// - Get/Call/Index: record a step and return the same chain
// - Resolve/ResolveContext: evaluate the recorded steps
// - As/Or: resolve into a typed value
//
// Failures are reported through logrus when diagnostics are enabled in
// package core; Resolve itself never returns an error.
package proxy
