package fixedincome

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := NewDate(2031, time.June, 15)
	tests := []string{
		"2031-06-15",
		"2031-6-15",
		"06/15/2031",
		"2031/06/15",
		"15-Jun-2031",
		"Jun 15, 2031",
		"2031-06-15 00:00:00", // timestamps keep only the day part
		" 2031-06-15 ",
	}
	for _, str := range tests {
		got, err := ParseDate(str)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", str, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDate(%q) = %s, want %s", str, got, want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, str := range []string{"", "not a date", "2031-13-45", "15/06/2031 junk extra"} {
		if got, err := ParseDate(str); err == nil {
			t.Errorf("ParseDate(%q) = %s, want error", str, got)
		}
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2026, time.March, 7).String(); got != "2026-03-07" {
		t.Errorf("String() = %q, want %q", got, "2026-03-07")
	}
}

func TestDateAddNormalizes(t *testing.T) {
	got := NewDate(2026, time.December, 31).Add(1)
	if want := NewDate(2027, time.January, 1); got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
}

func TestYearsUntil(t *testing.T) {
	d := NewDate(2026, time.January, 1)
	tests := []struct {
		days int
		want float64
	}{
		{365, 1},
		{730, 2},
		{-365, -1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := d.YearsUntil(d.Add(tt.days)); !floatEquals(got, tt.want) {
			t.Errorf("YearsUntil(+%dd) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestDateIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if NewDate(2026, time.January, 1).IsZero() {
		t.Error("a real date should not report IsZero")
	}
}
