// Package uuid tests for UUID v4 generation and validation.
package uuid

import "testing"

// TestNew verifies generated ids are valid v4 and unique.
func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if !IsValid(id) {
			t.Fatalf("New() = %q, not a valid UUID v4", id)
		}
		if seen[id] {
			t.Fatalf("New() repeated id %q", id)
		}
		seen[id] = true
	}
}

// TestIsValid verifies format checking.
func TestIsValid(t *testing.T) {
	cases := map[string]bool{
		"123e4567-e89b-42d3-a456-426614174000": true,
		"123e4567-e89b-12d3-a456-426614174000": false, // v1, not v4
		"not-a-uuid":                           false,
		"":                                     false,
	}
	for input, want := range cases {
		if got := IsValid(input); got != want {
			t.Errorf("IsValid(%q) = %v, want %v", input, got, want)
		}
	}
}

// TestValidate verifies the error form.
func TestValidate(t *testing.T) {
	if err := Validate("123e4567-e89b-42d3-a456-426614174000"); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}
	if err := Validate("nope"); err == nil {
		t.Error("Validate(invalid) should return error")
	}
}
