package config

import "codeberg.org/mutker/senecd/internal/logger"

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}

// LoggerLevel maps the level onto the logger package's levels
func (l LogLevel) LoggerLevel() (logger.LogLevel, bool) {
	switch l {
	case LogLevelDebug:
		return logger.DebugLevel, true
	case LogLevelInfo:
		return logger.InfoLevel, true
	case LogLevelWarning:
		return logger.WarnLevel, true
	case LogLevelError:
		return logger.ErrorLevel, true
	default:
		return logger.InfoLevel, false
	}
}
