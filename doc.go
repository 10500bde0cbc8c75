// Package oofix collects small, runnable fixes for common object-oriented
// design problems, written as plain Go.
//
// Each unit stands on its own:
//
//   - person: encapsulation; setters validate before they mutate
//   - app: a coordinator that runs four injected collaborators in order
//   - report: dependency inversion over a swappable report generator
//   - calculator: guarded division returning a descriptive error
//
// Shared plumbing lives in serrors (error kinds), di (explicit wiring),
// logger (zap context logger) and config (cleanenv).
//
// Runnable programs live under cmd/*, one per unit:
//
//	go run ./cmd/encapsulation
//	go run ./cmd/godclass
//	go run ./cmd/harddeps
//	go run ./cmd/exceptions
package oofix
