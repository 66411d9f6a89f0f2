package config

import (
	"errors"
	"testing"
)

func TestNormalizeHexColor(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedColor Color
		expectError   bool
	}{
		{name: "shorthand_with_prefix", input: "#F00", expectedColor: "FF0000"},
		{name: "lower_case_full", input: "00ff00", expectedColor: "00FF00"},
		{name: "mixed_case_with_prefix", input: "#1a2B3c", expectedColor: "1A2B3C"},
		{name: "shorthand_lower_case", input: "abc", expectedColor: "AABBCC"},
		{name: "surrounding_whitespace", input: "  #0f0 ", expectedColor: "00FF00"},
		{name: "empty", input: "", expectError: true},
		{name: "prefix_only", input: "#", expectError: true},
		{name: "wrong_length", input: "#12345", expectError: true},
		{name: "non_hex_digit", input: "GG0000", expectError: true},
		{name: "double_prefix", input: "##FF0000", expectError: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			color, err := NormalizeHexColor(testCase.input)
			if testCase.expectError {
				if err == nil {
					t.Fatalf("expected error for %q, got color %q", testCase.input, color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", testCase.input, err)
			}
			if color != testCase.expectedColor {
				t.Fatalf("expected %q, got %q", testCase.expectedColor, color)
			}
		})
	}
}

func TestNormalizeHexColorEmptyIsSentinel(t *testing.T) {
	if _, err := NormalizeHexColor("  "); !errors.Is(err, ErrEmptyColor) {
		t.Fatalf("expected ErrEmptyColor, got %v", err)
	}
}

func TestColorHex(t *testing.T) {
	if hex := Color("FF0000").Hex(); hex != "#FF0000" {
		t.Fatalf("expected #FF0000, got %s", hex)
	}
}
