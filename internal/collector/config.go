package collector

import (
	"time"

	"codeberg.org/mutker/senecd/internal/errors"
)

const (
	// MinInterval is the shortest allowed poll interval.
	MinInterval = 10 * time.Second
	// RecommendedInterval is the shortest interval that does not risk
	// disturbing the device's own cloud connection.
	RecommendedInterval = 60 * time.Second
)

type Config struct {
	// Host is the address of the device to poll.
	Host string
	// Interval is the time between fetch cycles.
	Interval time.Duration
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Host == "" {
		return errFactory.New(ErrInvalidHost)
	}

	if c.Interval < MinInterval {
		return errFactory.WithData(ErrIntervalTooShort, c.Interval.String())
	}

	return nil
}
