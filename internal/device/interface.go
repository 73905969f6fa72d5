package device

import (
	"context"
	"encoding/json"
)

// RawStatus is one status record as reported by the device. The contents
// are opaque telemetry fields (voltages, phase data and so on) and are
// passed through verbatim; nothing in this module interprets them.
type RawStatus map[string]json.RawMessage

// Fetcher retrieves the current raw status of the device at host. A call
// must produce exactly one status record or fail with an error.
type Fetcher interface {
	Fetch(ctx context.Context, host string) (RawStatus, error)
}
