package forecast

import (
	"testing"
	"time"
)

func TestCurrentBaseTimeBoundaries(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"just before 06", time.Date(2025, 1, 15, 5, 59, 0, 0, kst), "202501141800"},
		{"exactly 06", time.Date(2025, 1, 15, 6, 0, 0, 0, kst), "202501150600"},
		{"just before 18", time.Date(2025, 1, 15, 17, 59, 0, 0, kst), "202501150600"},
		{"exactly 18", time.Date(2025, 1, 15, 18, 0, 0, 0, kst), "202501151800"},
		{"just before midnight", time.Date(2025, 1, 15, 23, 59, 0, 0, kst), "202501151800"},
		{"midnight", time.Date(2025, 1, 16, 0, 0, 0, 0, kst), "202501151800"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentBaseTime(tc.now); got != tc.want {
				t.Errorf("CurrentBaseTime(%v) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}

func TestCurrentBaseTimeConvertsToKST(t *testing.T) {
	// 22:30 UTC on the 14th is 07:30 KST on the 15th.
	now := time.Date(2025, 1, 14, 22, 30, 0, 0, time.UTC)
	if got := CurrentBaseTime(now); got != "202501150600" {
		t.Errorf("CurrentBaseTime(%v) = %q, want %q", now, got, "202501150600")
	}
}

func TestValidBaseTimeAcceptsPublicationTimes(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, kst)

	if got := ValidBaseTime("202501010600", now); got != "202501010600" {
		t.Errorf("valid 0600 candidate was replaced with %q", got)
	}
	if got := ValidBaseTime("202501011800", now); got != "202501011800" {
		t.Errorf("valid 1800 candidate was replaced with %q", got)
	}
}

func TestValidBaseTimeCorrectsSilently(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, kst)
	want := "202501150600"

	for _, candidate := range []string{"202501010700", "notatimestamp", "0600", ""} {
		if got := ValidBaseTime(candidate, now); got != want {
			t.Errorf("ValidBaseTime(%q) = %q, want computed %q", candidate, got, want)
		}
	}
}
