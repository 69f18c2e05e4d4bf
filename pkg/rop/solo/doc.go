// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions are the building blocks the access chain
// resolver is folded from.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Try: call a function (Out, error) and convert error to failure
// - DoubleTee: side effects on success or failure
// - Finally: reduce to a concrete value via success/error handlers
package solo
