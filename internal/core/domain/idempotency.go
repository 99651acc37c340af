package domain

import "time"

// IdempotencyRecord remembers the outcome of a mutating call so a retried
// request with the same key replays the original response.
type IdempotencyRecord struct {
	Scope       string // operation name, e.g. "transfer.submit"
	Key         string // client supplied
	Fingerprint string // identifies the request the key was first used with
	ResourceID  string
	Response    []byte // JSON encoded result; nil until the call completes
	CreatedAt   time.Time
}

// Completed reports whether the original call finished and its response was
// stored.
func (r *IdempotencyRecord) Completed() bool {
	return r != nil && r.Response != nil
}
