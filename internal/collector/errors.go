package collector

import "codeberg.org/mutker/senecd/internal/errors"

const (
	// Configuration Errors
	ErrInvalidHost      = errors.ErrorCode("collector_invalid_host")
	ErrIntervalTooShort = errors.ErrorCode("collector_interval_too_short")

	// Lifecycle Errors
	ErrAlreadyStarted = errors.ErrorCode("collector_already_started")

	// Cycle Errors
	ErrFetchCycle      = errors.ErrorCode("collector_fetch_cycle_failed")
	ErrAdapterContract = errors.ErrorCode("collector_adapter_contract")
)
