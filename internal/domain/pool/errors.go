package pool

import "errors"

var (
	ErrPoolNotFound    = errors.New("pool not found")
	ErrPoolAlreadySent = errors.New("pool has already been sent")
	ErrEntryNotFound   = errors.New("entry not found")
)
