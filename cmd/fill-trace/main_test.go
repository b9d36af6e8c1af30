// ABOUTME: Tests for fill-trace flag checks
// ABOUTME: Ensures frame and callback counts below one are rejected
package main

import "testing"

func TestCheckCounts(t *testing.T) {
	tests := []struct {
		name      string
		frames    int
		callbacks int
		wantErr   bool
	}{
		{"valid", 160, 8, false},
		{"single frame", 1, 1, false},
		{"zero frames", 0, 8, true},
		{"negative frames", -160, 8, true},
		{"zero callbacks", 160, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCounts(tt.frames, tt.callbacks)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
