package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uns-kikaku/staffing-backend-go/internal/domain/attendance"
	"github.com/uns-kikaku/staffing-backend-go/internal/domain/payroll"
	"github.com/uns-kikaku/staffing-backend-go/internal/pkg/validator"
)

// Night premium window: 22:00 through 05:00 the next day, anchored to the
// shift's start date, expressed in minutes from that day's midnight.
const (
	nightWindowStartMin = 22 * 60
	nightWindowEndMin   = 24*60 + 5*60
	minutesPerDay       = 24 * 60
)

var (
	sixty        = decimal.NewFromInt(60)
	eightHours   = decimal.NewFromInt(8)
	hoursPerDay  = decimal.NewFromInt(24)
	zeroDuration = decimal.Zero
)

// HoursClassifier turns raw timer-card rows into a categorized
// HoursBreakdown. Weekend hours all go to the holiday bucket; weekday hours
// split at 8h/day into regular and overtime; night hours are computed
// independently as the overlap with the 22:00-05:00 window and double-count
// with the other buckets.
type HoursClassifier struct{}

func NewHoursClassifier() *HoursClassifier {
	return &HoursClassifier{}
}

// Classify processes every record, skipping malformed rows. Rows that parse
// but have an implausible duration (zero, negative, or over 24h) are skipped
// too and reported as data-quality faults for the payroll validator; they are
// never silently clamped.
func (c *HoursClassifier) Classify(records []attendance.TimerRecord) (payroll.HoursBreakdown, []string) {
	var breakdown payroll.HoursBreakdown
	breakdown.RegularHours = decimal.Zero
	breakdown.OvertimeHours = decimal.Zero
	breakdown.NightHours = decimal.Zero
	breakdown.HolidayHours = decimal.Zero
	breakdown.SundayHours = decimal.Zero
	breakdown.TotalHours = decimal.Zero

	var faults []string

	for _, rec := range records {
		if rec.WorkDate == "" || rec.ClockIn == "" || rec.ClockOut == "" {
			faults = append(faults, fmt.Sprintf("timer record skipped: missing fields (date=%q in=%q out=%q)", rec.WorkDate, rec.ClockIn, rec.ClockOut))
			continue
		}

		workDate, ok := validator.IsValidDate(rec.WorkDate)
		if !ok {
			faults = append(faults, fmt.Sprintf("timer record skipped: bad work_date %q", rec.WorkDate))
			continue
		}
		in, ok := validator.IsValidClock(rec.ClockIn)
		if !ok {
			faults = append(faults, fmt.Sprintf("timer record %s skipped: bad clock_in %q", rec.WorkDate, rec.ClockIn))
			continue
		}
		out, ok := validator.IsValidClock(rec.ClockOut)
		if !ok {
			faults = append(faults, fmt.Sprintf("timer record %s skipped: bad clock_out %q", rec.WorkDate, rec.ClockOut))
			continue
		}
		inMin := clockMinutes(in)
		outMin := clockMinutes(out)

		// Overnight shift: clock-out earlier than clock-in means it happened
		// the next calendar day.
		if outMin < inMin {
			outMin += minutesPerDay
		}

		durationMin := outMin - inMin
		hours := minutesToHours(durationMin)
		if hours.LessThanOrEqual(zeroDuration) || hours.GreaterThan(hoursPerDay) {
			faults = append(faults, fmt.Sprintf("timer record %s has implausible duration %sh", rec.WorkDate, hours.String()))
			continue
		}

		breakdown.TotalHours = breakdown.TotalHours.Add(hours)
		breakdown.WorkDays++

		if isWeekend(workDate) {
			breakdown.HolidayHours = breakdown.HolidayHours.Add(hours)
		} else if hours.GreaterThan(eightHours) {
			breakdown.RegularHours = breakdown.RegularHours.Add(eightHours)
			breakdown.OvertimeHours = breakdown.OvertimeHours.Add(hours.Sub(eightHours))
		} else {
			breakdown.RegularHours = breakdown.RegularHours.Add(hours)
		}

		if nightMin := nightOverlapMinutes(inMin, outMin); nightMin > 0 {
			breakdown.NightHours = breakdown.NightHours.Add(minutesToHours(nightMin))
		}
	}

	return breakdown, faults
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func minutesToHours(min int) decimal.Decimal {
	return decimal.NewFromInt(int64(min)).Div(sixty)
}

func isWeekend(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}

// nightOverlapMinutes returns the overlap between the shift interval and the
// night window, both in minutes from the shift day's midnight.
func nightOverlapMinutes(inMin, outMin int) int {
	start := inMin
	if start < nightWindowStartMin {
		start = nightWindowStartMin
	}
	end := outMin
	if end > nightWindowEndMin {
		end = nightWindowEndMin
	}
	if start >= end {
		return 0
	}
	return end - start
}
