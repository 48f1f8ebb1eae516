// ABOUTME: SchemaEnvelope wraps every persisted blob with version and timestamp
// ABOUTME: Lets the migration runner detect old shapes before callers see them

package envelope

import (
	"encoding/json"
	"time"

	coreerrors "headlines-app-api/core/errors"
)

// Envelope is the durable wrapper around every persisted value
type Envelope struct {
	// Version is the schema version the data was written with
	Version int `json:"version"`

	// Timestamp is when the envelope was sealed, unix milliseconds
	Timestamp int64 `json:"timestamp"`

	// Data is the wrapped payload, left raw until the caller decodes it
	Data json.RawMessage `json:"data"`
}

// Seal wraps data in an envelope and serializes it to a string
func Seal(version int, data interface{}, now time.Time) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	env := Envelope{
		Version:   version,
		Timestamp: now.UnixMilli(),
		Data:      raw,
	}

	out, err := json.Marshal(env)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// Open parses a serialized envelope. Unknown fields are ignored so blobs
// written by newer code still open; a missing version field reads as 0.
func Open(key, raw string) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, &coreerrors.CorruptDataError{Key: key, Err: err}
	}
	return &env, nil
}

// Decode unmarshals the envelope payload into v
func (e *Envelope) Decode(key string, v interface{}) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return &coreerrors.CorruptDataError{Key: key, Err: err}
	}
	return nil
}

// SealedAt returns the envelope timestamp as a time.Time
func (e *Envelope) SealedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}
