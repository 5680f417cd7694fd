package domain

import (
	"errors"

	"github.com/mouse-blink/declfix/internal/adapter"
)

var (
	// ErrNotFound means the target file does not exist; nothing was written.
	ErrNotFound = adapter.ErrNotFound
	// ErrIO covers every other read or write failure.
	ErrIO = adapter.ErrIO
	// ErrInvalidVariable means the tracked-variable table cannot be applied.
	ErrInvalidVariable = errors.New("invalid tracked variable")
)
