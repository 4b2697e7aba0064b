package model

import "testing"

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		want       int
	}{
		{"First Page", 0, 10, 0},
		{"Aligned", 20, 10, 20},
		{"Rounds Down To Page", 3, 2, 2},
		{"Inside First Page", 9, 10, 0},
		{"No Size", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageOffset(tt.from, tt.size); got != tt.want {
				t.Errorf("PageOffset(%d, %d) = %d, want %d", tt.from, tt.size, got, tt.want)
			}
		})
	}
}
