package util

import (
	"testing"
	"time"
)

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected string
	}{
		{2025, time.January, "Jan 25"},
		{2025, time.April, "Apr 25"},
		{2024, time.December, "Dec 24"},
		{1999, time.June, "Jun 99"},
	}

	for _, tt := range tests {
		if got := MonthLabel(tt.year, tt.month); got != tt.expected {
			t.Errorf("MonthLabel(%d, %s) = %q, expected %q", tt.year, tt.month, got, tt.expected)
		}
	}
}

func TestBeforeYearMonth(t *testing.T) {
	tests := []struct {
		name     string
		aYear    int
		aMonth   time.Month
		bYear    int
		bMonth   time.Month
		expected bool
	}{
		{"earlier year", 2024, time.December, 2025, time.January, true},
		{"later year", 2025, time.January, 2024, time.December, false},
		{"same year earlier month", 2025, time.February, 2025, time.March, true},
		{"same year later month", 2025, time.March, 2025, time.February, false},
		{"equal", 2025, time.March, 2025, time.March, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BeforeYearMonth(tt.aYear, tt.aMonth, tt.bYear, tt.bMonth); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
