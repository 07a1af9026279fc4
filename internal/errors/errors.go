// Package errors provides sentinel errors and error types for termchess.
// It defines the failure conditions of the rules engine and the session layer,
// plus structured error types that preserve context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidEncoding indicates a malformed algebraic square such as "i9".
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrIllegalMove indicates a move rejected by the rules engine or the session.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionDiscarded indicates the player aborted a pawn promotion.
	ErrPromotionDiscarded = errors.New("promotion discarded")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLegalMoves indicates that the side asked to move has no legal move.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrUnknownCommand indicates a terminal command that could not be understood.
	ErrUnknownCommand = errors.New("unknown command")
)

// MoveError wraps errors with move context: the squares involved, the piece
// that tried to move and a short reason. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square in algebraic notation (if known)
	To     string // Destination square in algebraic notation (if known)
	Piece  string // Description of the moving piece (if known)
	Reason string // Why the move was rejected
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s -> %s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// CommandError represents a failure to interpret a line typed at the prompt.
type CommandError struct {
	Err     error  // The underlying error
	Line    string // The raw input line
	Command string // The command word, if one was recognised
}

// Error returns a formatted error message with the offending input.
func (e *CommandError) Error() string {
	var parts []string

	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("command %q", e.Command))
	}
	if e.Line != "" {
		parts = append(parts, fmt.Sprintf("input %q", e.Line))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ", "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "command error"
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
