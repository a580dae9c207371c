// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package model

import "errors"

var (
	// ErrSourceUnavailable marks a failed fetch from one upstream
	// catalog. The reconciler recovers from it by falling back.
	ErrSourceUnavailable = errors.New("event source unavailable")

	// ErrBothSourcesFailed is terminal for a single discovery request.
	ErrBothSourcesFailed = errors.New("all event sources failed")

	ErrNotFound = errors.New("not found")
	ErrNotOwner = errors.New("not the event owner")
)
