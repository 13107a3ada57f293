package timeutil

import "testing"

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{59.9, 60},
		{-0.4, 0},
	}

	for _, tc := range cases {
		if got := Round(tc.in); got != tc.want {
			t.Errorf("Round(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		in                 float64
		wantMins, wantSecs int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{90, 1, 30},
		{89.2, 1, 30},
		{1500, 25, 0},
		{-5, 0, 0},
	}

	for _, tc := range cases {
		mins, secs := SecsToMinsAndSecs(tc.in)
		if mins != tc.wantMins || secs != tc.wantSecs {
			t.Errorf(
				"SecsToMinsAndSecs(%v) = (%d, %d), want (%d, %d)",
				tc.in, mins, secs, tc.wantMins, tc.wantSecs,
			)
		}
	}
}
