// Package services defines the business logic for chat generation, points
// calculation, and wisdom generation. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer. Note that chat generation deliberately has no error
// path: provider failures resolve to a fallback response instead (see
// ChatService.Generate).
package services

import "errors"

var (
	// ErrProviderFailure wraps a completion-provider error on paths that do
	// propagate failures (wisdom generation, unlike chat).
	ErrProviderFailure = errors.New("completion provider failure")
)
