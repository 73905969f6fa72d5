package device

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"codeberg.org/mutker/senecd/internal/errors"
)

const (
	statusPath     = "/lala.cgi"
	defaultTimeout = 15 * time.Second
)

// statusRequest asks the device for its energy and per-phase sections.
// The response body is returned to the caller untouched.
var statusRequest = []byte(`{"ENERGY":{},"PM1OBJ1":{},"PM1OBJ2":{}}`)

// Client is the default Fetcher. It performs one status request per Fetch
// call against the device's local HTTP endpoint.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with the given request timeout. A timeout of
// zero or less selects the default. The timeout bounds a single fetch so a
// hung device cannot stall a polling cycle indefinitely.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch requests the current status from the device at host and returns
// the response verbatim.
func (c *Client) Fetch(ctx context.Context, host string) (RawStatus, error) {
	errFactory := errors.New()

	if host == "" {
		return nil, errFactory.New(ErrInvalidHost)
	}

	url := fmt.Sprintf("http://%s%s", host, statusPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(statusRequest))
	if err != nil {
		return nil, errFactory.Wrap(ErrFetchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errFactory.Wrap(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errFactory.WithData(ErrBadResponse, resp.StatusCode)
	}

	var status RawStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, errFactory.Wrap(ErrDecodeFailed, err)
	}

	return status, nil
}
