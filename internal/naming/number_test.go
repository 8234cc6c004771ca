package naming

import (
	"fmt"
	"testing"
)

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		want    int
	}{
		{
			name:    "empty history starts at one",
			history: nil,
			want:    1,
		},
		{
			name:    "single use keeps the number open",
			history: []string{"1_bracket_12_kg_M01_P02_P_0"},
			want:    1,
		},
		{
			name:    "completed pair advances",
			history: []string{"1_bracket_12_kg_M01_P02_P_0", "1_bracket_12_kg_M01_P02_B_0"},
			want:    2,
		},
		{
			name:    "second pair stays open after one use",
			history: []string{"1_a", "1_b", "2_c"},
			want:    2,
		},
		{
			name:    "second completed pair advances again",
			history: []string{"1_a", "1_b", "2_c", "2_d"},
			want:    3,
		},
		{
			name:    "more than two uses still advances",
			history: []string{"3_a", "3_b", "3_c"},
			want:    4,
		},
		{
			name:    "overridden high number is respected",
			history: []string{"5_a"},
			want:    5,
		},
		{
			name:    "order of history does not matter",
			history: []string{"2_a", "1_b", "2_c", "1_d"},
			want:    3,
		},
		{
			name:    "malformed prefixes are ignored",
			history: []string{"x_a", "_b", "-1_c", "0_d", "no-underscore"},
			want:    1,
		},
		{
			name:    "malformed mixed with valid",
			history: []string{"junk", "2_a"},
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextNumber(tt.history); got != tt.want {
				t.Errorf("NextNumber(%v) = %d, want %d", tt.history, got, tt.want)
			}
		})
	}
}

// TestNextNumberPairProgression walks a confirm loop the way a session
// does: each confirmation appends the assigned name and the next number is
// derived from the grown history.
func TestNextNumberPairProgression(t *testing.T) {
	var history []string
	want := []int{1, 1, 2, 2, 3, 3, 4}

	for i, w := range want {
		got := NextNumber(history)
		if got != w {
			t.Fatalf("confirmation %d: NextNumber = %d, want %d (history %v)", i+1, got, w, history)
		}
		history = append(history, fmt.Sprintf("%d_part_%d_kg_M01_P01_P_0", got, i))
	}
}
