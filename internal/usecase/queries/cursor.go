package queries

import (
	"github.com/google/uuid"

	"tripcore/internal/pkg/errs"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
)

var ErrInvalidCursor = errs.New("invalid cursor")

// ParseCursor decodes an opaque pagination cursor. The cursor is the id of
// the last event seen on the previous page; the read store resolves it to a
// timestamp and returns only strictly older rows, so concurrently inserted
// events can never be delivered twice across pages.
func ParseCursor(cursor string) (*uuid.UUID, error) {
	if cursor == "" {
		return nil, nil
	}
	id, err := uuid.Parse(cursor)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &id, nil
}

func ValidateLimit(limit int) int32 {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return int32(limit)
}
