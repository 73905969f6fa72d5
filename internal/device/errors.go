package device

import "codeberg.org/mutker/senecd/internal/errors"

const (
	// Request Errors
	ErrInvalidHost = errors.ErrorCode("device_invalid_host")
	ErrFetchFailed = errors.ErrorCode("device_fetch_failed")

	// Response Errors
	ErrBadResponse  = errors.ErrorCode("device_bad_response")
	ErrDecodeFailed = errors.ErrorCode("device_decode_failed")
)
