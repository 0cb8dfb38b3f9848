package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalYearOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{date(2025, time.March, 31), 2024},
		{date(2025, time.April, 1), 2025},
		{date(2025, time.December, 15), 2025},
		{date(2026, time.January, 10), 2025},
		{date(2026, time.March, 31), 2025},
		{date(2026, time.April, 1), 2026},
	}

	for _, tt := range tests {
		if got := FiscalYearOf(tt.date); got != tt.want {
			t.Errorf("FiscalYearOf(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestFiscalYearWindow(t *testing.T) {
	start, end := FiscalYearWindow(2025)

	if !start.Equal(date(2025, time.April, 1)) {
		t.Errorf("start = %s", start)
	}
	if !end.Equal(date(2026, time.March, 31)) {
		t.Errorf("end = %s", end)
	}
}

func TestDaysInFiscalYear(t *testing.T) {
	tests := []struct {
		fy   int
		want int
	}{
		// FY2023 runs through 2024-02-29
		{2023, 366},
		{2024, 365},
		{2025, 365},
		// FY2027 runs through 2028-02-29
		{2027, 366},
	}

	for _, tt := range tests {
		if got := DaysInFiscalYear(tt.fy); got != tt.want {
			t.Errorf("DaysInFiscalYear(%d) = %d, want %d", tt.fy, got, tt.want)
		}
	}
}

func TestAttributedFiscalYear(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"contained", date(2025, time.June, 1), date(2025, time.June, 3), 2025},
		{"contained at boundary", date(2026, time.March, 30), date(2026, time.March, 31), 2025},
		{"majority before boundary", date(2026, time.March, 28), date(2026, time.April, 1), 2025},
		{"majority after boundary", date(2026, time.March, 31), date(2026, time.April, 3), 2026},
		{"tie goes to later year", date(2026, time.March, 30), date(2026, time.April, 2), 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttributedFiscalYear(tt.start, tt.end); got != tt.want {
				t.Errorf("AttributedFiscalYear(%s, %s) = %d, want %d",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestLegalMinimumDays(t *testing.T) {
	if !LegalMinimumDays.Equal(decimal.NewFromInt(5)) {
		t.Errorf("LegalMinimumDays = %s", LegalMinimumDays)
	}
}
