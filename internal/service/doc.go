// Package service implements the per-resource business logic: uniqueness
// checks, foreign-key existence checks, and the partial-update merge rules.
// Services are stateless; every operation is a single request/response
// round-trip against the store with no cross-request state.
package service
