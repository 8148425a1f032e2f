package sentinel

import "errors"

// Infrastructure facts returned (optionally wrapped) by stores. Services decide
// what they mean: a cache miss falls through to the source of truth, while an
// unavailable cache is logged and bypassed.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
