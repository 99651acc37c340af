package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursorToken(t *testing.T) {
	createdAt := time.Date(2025, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursorToken(createdAt, "rcpt-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	cursor, err := DecodeCursorToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, cursor.CreatedAt, "Created at should match after decode")
	assert.Equal(t, "rcpt-42", cursor.ID, "ID should match after decode")

	// Non-UTC input is normalized
	loc := time.FixedZone("IST", 5*3600+1800)
	local := createdAt.In(loc)
	cursor, err = DecodeCursorToken(EncodeCursorToken(local, "rcpt-43"))
	assert.NoError(t, err)
	assert.True(t, local.Equal(cursor.CreatedAt), "Instant should be preserved")
}

func TestDecodeCursorTokenError(t *testing.T) {
	_, err := DecodeCursorToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.StdEncoding.EncodeToString([]byte("2025-03-15T00:00:00Z"))
	_, err = DecodeCursorToken(noSeparator)
	assert.Error(t, err, "Should return an error for missing separator")
	assert.Contains(t, err.Error(), "split")

	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|rcpt-1"))
	_, err = DecodeCursorToken(badDate)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestCursorAfter(t *testing.T) {
	base := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	cursor := Cursor{CreatedAt: base, ID: "m"}

	assert.True(t, cursor.After(base.Add(-time.Second), "z"), "older rows come after")
	assert.False(t, cursor.After(base.Add(time.Second), "a"), "newer rows come before")
	assert.True(t, cursor.After(base, "a"), "same time, smaller id comes after")
	assert.False(t, cursor.After(base, "m"), "the cursor row itself is excluded")
	assert.False(t, cursor.After(base, "z"))
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-5))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}
