package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidEncoding", ErrInvalidEncoding, ErrInvalidEncoding},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrPromotionDiscarded", ErrPromotionDiscarded, ErrPromotionDiscarded},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
		{"ErrUnknownCommand", ErrUnknownCommand, ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrInvalidEncoding, ErrIllegalMove, ErrPromotionDiscarded,
		ErrInvalidFEN, ErrInvalidConfig, ErrNoLegalMoves, ErrUnknownCommand,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				From:   "e2",
				To:     "e5",
				Piece:  "white Pawn",
				Reason: "destination not legal",
			},
			contains: []string{"white Pawn", "e2 -> e5", "destination not legal", "illegal move"},
		},
		{
			name:     "source only",
			err:      &MoveError{Err: ErrIllegalMove, From: "d4", Reason: "no piece at source"},
			contains: []string{"from d4", "no piece at source"},
		},
		{
			name:     "bare sentinel",
			err:      &MoveError{Err: ErrPromotionDiscarded},
			contains: []string{"promotion discarded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:    ErrIllegalMove,
		From:   "e1",
		To:     "g1",
		Reason: "wrong turn",
	}

	wrapped := fmt.Errorf("bot move failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Reason != "wrong turn" {
		t.Errorf("extracted.Reason = %q, want %q", extracted.Reason, "wrong turn")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestCommandError(t *testing.T) {
	err := &CommandError{
		Err:     ErrUnknownCommand,
		Line:    "x e2 e4",
		Command: "x",
	}

	msg := err.Error()
	if !containsIgnoreCase(msg, `"x e2 e4"`) {
		t.Errorf("CommandError.Error() should contain the input line, got %q", msg)
	}
	if !errors.Is(err, ErrUnknownCommand) {
		t.Error("errors.Is(err, ErrUnknownCommand) = false, want true")
	}

	empty := &CommandError{}
	if got := empty.Error(); got != "command error" {
		t.Errorf("empty CommandError.Error() = %q, want %q", got, "command error")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidEncoding, "square %q", "z0")

	if !errors.Is(wrapped, ErrInvalidEncoding) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), `square "z0"`) {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
