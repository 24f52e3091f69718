package testutil

import (
	"testing"

	"xiangqi/internal/xiangqi"
)

// MustDecode parses a FEN-like position string and fails the test on error.
func MustDecode(t *testing.T, fen string) *xiangqi.Position {
	t.Helper()
	pos, err := xiangqi.DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode position %q: %v", fen, err)
	}
	return pos
}
