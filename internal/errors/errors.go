// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// GenerateFailed indicates the engine could not produce SQL for a question.
	GenerateFailed Kind = "generate_failed"
	// ValidateFailed indicates the engine could not run validation for a statement.
	ValidateFailed Kind = "validate_failed"
	// ExplainFailed indicates the engine could not explain a statement.
	ExplainFailed Kind = "explain_failed"
	// TrainFailed indicates the engine rejected or could not store training data.
	TrainFailed Kind = "train_failed"
	// EngineUnreachable indicates the remote engine endpoint could not be reached.
	EngineUnreachable Kind = "engine_unreachable"
	// ConfigMissing indicates a required configuration value is absent at startup.
	ConfigMissing Kind = "config_missing"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
