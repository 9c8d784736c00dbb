package match

import (
	"testing"
	"unicode/utf8"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-insensitive
		{"ABC", "abc", 0},
		{"Name", "name", 0},
		{"customerid", "customerID", 0},

		// Real-world property name examples
		{"adress", "address", 1},
		{"email", "email_address", 8},
		{"created_at", "updated_at", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Distance(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Distance(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Distance symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}

			// Distance can never undercut the length difference
			lenDiff := utf8.RuneCountInString(tt.a) - utf8.RuneCountInString(tt.b)
			if lenDiff < 0 {
				lenDiff = -lenDiff
			}

			if result < lenDiff {
				t.Errorf("Distance(%q, %q) = %d, below length difference %d",
					tt.a, tt.b, result, lenDiff)
			}
		})
	}
}

func TestDistanceSelf(t *testing.T) {
	for _, s := range []string{"", "x", "OrderID", "customer_name", "über"} {
		if d := Distance(s, s); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestDistanceEmptyEqualsLength(t *testing.T) {
	for _, s := range []string{"a", "abc", "property"} {
		if d := Distance("", s); d != utf8.RuneCountInString(s) {
			t.Errorf("Distance(\"\", %q) = %d, want %d", s, d, utf8.RuneCountInString(s))
		}
	}
}

// Benchmark tests
func BenchmarkDistance(b *testing.B) {
	x := "CustomerOrderID"
	y := "customer_order_id"
	for i := 0; i < b.N; i++ {
		Distance(x, y)
	}
}
