package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// DefaultLimit and MaxLimit bound page sizes for all list endpoints.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor is the decoded position of the last row of a page. Lists are ordered
// by (created_at DESC, id DESC), so the next page starts strictly after it.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// After reports whether a row at (createdAt, id) sorts after the cursor.
func (c Cursor) After(createdAt time.Time, id string) bool {
	if createdAt.Equal(c.CreatedAt) {
		return id < c.ID
	}
	return createdAt.Before(c.CreatedAt)
}

// EncodeCursorToken creates a base64 encoded token from a row's creation time and ID.
// This is used for consistent pagination across different repositories.
func EncodeCursorToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.UTC().Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursorToken parses the base64 encoded token back into a Cursor.
func DecodeCursorToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{CreatedAt: createdAt, ID: parts[1]}, nil
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
