package jtd

import "testing"

func TestIsRFC3339(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"zulu", "2021-01-01T00:00:00Z", true},
		{"zulu fraction", "2021-01-01T00:00:00.123Z", true},
		{"offset", "2021-01-01T00:00:00+02:00", true},
		{"lowercase t and z", "2021-01-01t00:00:00z", true},
		{"leap second", "2021-06-30T23:59:60Z", true},
		{"missing T", "2021-01-01 00:00:00Z", false},
		{"missing zone", "2021-01-01T00:00:00", false},
		{"bad month", "2021-13-01T00:00:00Z", false},
		{"bad day for month", "2021-02-30T00:00:00Z", false},
		{"feb 29 leap year", "2020-02-29T00:00:00Z", true},
		{"feb 29 non-leap year", "2021-02-29T00:00:00Z", false},
		{"not a date", "not-a-timestamp", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRFC3339(tt.in); got != tt.want {
				t.Errorf("isRFC3339(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
