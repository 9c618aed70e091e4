package usecase

import "testing"

func TestValidQuantity(t *testing.T) {
	cases := []struct {
		quantity int
		want     bool
	}{
		{1, true},
		{100, true},
		{0, false},
		{-3, false},
	}
	for _, tc := range cases {
		if got := ValidQuantity(tc.quantity); got != tc.want {
			t.Fatalf("ValidQuantity(%d) = %v, want %v", tc.quantity, got, tc.want)
		}
	}
}

func TestValidAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   bool
	}{
		{0.01, true},
		{100, true},
		{0, false},
		{-5, false},
	}
	for _, tc := range cases {
		if got := ValidAmount(tc.amount); got != tc.want {
			t.Fatalf("ValidAmount(%v) = %v, want %v", tc.amount, got, tc.want)
		}
	}
}
