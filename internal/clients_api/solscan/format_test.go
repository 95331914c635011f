package solscan

import "testing"

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{2_500_000_000, "$2.5B"},
		{12_345_678, "$12.35M"},
		{1_200_000, "$1.2M"},
		{987_654, "$987.65K"},
		{1_000, "$1K"},
		{42.5, "$42.5"},
		{0, "$0"},
	}
	for _, tc := range cases {
		if got := FormatUSD(tc.value); got != tc.want {
			t.Errorf("FormatUSD(%f) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1_500_000_000, "1.5B"},
		{1_500_000, "1.5M"},
		{2_200, "2.2K"},
		{15, "15"},
		{0.25, "0.25"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.value); got != tc.want {
			t.Errorf("FormatAmount(%f) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1.5, "$1.5"},
		{0.00123, "$0.00123"},
		{0.5, "$0.5"},
		{0, "$0"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.value); got != tc.want {
			t.Errorf("FormatPrice(%f) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
