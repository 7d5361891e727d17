package domain

import (
	"errors"
	"fmt"
)

// ConfigCode is the user-facing code shown on the error screen.
type ConfigCode string

const (
	CodeMissingCommodity     ConfigCode = "005"
	CodeIndexUnavailable     ConfigCode = "006"
	CodeCommodityNotFound    ConfigCode = "007"
	CodeModelListUnavailable ConfigCode = "008"
	CodeEmptyModelList       ConfigCode = "009"
)

// ConfigError is a fatal configuration failure. It aborts initialization.
type ConfigError struct {
	Code    ConfigCode
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Code, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is matches any ConfigError carrying the same code.
func (e *ConfigError) Is(target error) bool {
	var t *ConfigError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// UserMessage is the text handed to the error screen.
func (e *ConfigError) UserMessage() string {
	return fmt.Sprintf("№%s: %s", e.Code, e.Message)
}

// Sentinels for errors.Is; use NewConfigError to attach a cause.
var (
	ErrMissingCommodity     = &ConfigError{Code: CodeMissingCommodity, Message: "commodityName missing"}
	ErrIndexUnavailable     = &ConfigError{Code: CodeIndexUnavailable, Message: "commodity index unavailable"}
	ErrCommodityNotFound    = &ConfigError{Code: CodeCommodityNotFound, Message: "commodity not found"}
	ErrModelListUnavailable = &ConfigError{Code: CodeModelListUnavailable, Message: "model list unavailable"}
	ErrEmptyModelList       = &ConfigError{Code: CodeEmptyModelList, Message: "model list is empty"}
)

// NewConfigError copies a sentinel and attaches detail and a cause.
func NewConfigError(kind *ConfigError, detail string, cause error) *ConfigError {
	msg := kind.Message
	if detail != "" {
		msg = fmt.Sprintf("%s (%s)", kind.Message, detail)
	}
	return &ConfigError{Code: kind.Code, Message: msg, Err: cause}
}

var (
	// ErrModelLoad marks a recoverable per-index load failure.
	ErrModelLoad = errors.New("model load failed")

	// ErrIndexOutOfRange is returned for a model index outside the list.
	ErrIndexOutOfRange = errors.New("model index out of range")

	// ErrSessionEnded is returned when a request outlives its AR session.
	ErrSessionEnded = errors.New("ar session ended")
)
