package models

import "fmt"

// WarningKind categorizes non-fatal advisories surfaced during a comparison.
type WarningKind int

const (
	// WarningConfiguration indicates a recoverable configuration problem,
	// such as an ignore pattern that failed to compile.
	WarningConfiguration WarningKind = iota
	// WarningSize indicates inputs large enough that comparison may be slow.
	WarningSize
)

// String returns the label for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarningConfiguration:
		return "configuration"
	case WarningSize:
		return "size"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal advisory attached to a comparison result.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Kind, w.Message)
}

// NewConfigurationWarning creates a configuration warning.
func NewConfigurationWarning(format string, args ...interface{}) Warning {
	return Warning{Kind: WarningConfiguration, Message: fmt.Sprintf(format, args...)}
}

// NewSizeWarning creates a size warning.
func NewSizeWarning(format string, args ...interface{}) Warning {
	return Warning{Kind: WarningSize, Message: fmt.Sprintf(format, args...)}
}
