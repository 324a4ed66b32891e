// Package summary turns a plate configuration plus a raw well table into a
// blank-corrected, replicate-averaged summary table, and handles that
// table's file round trip and series selection for graphing.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwrussell/bioscreen/bsm"
)

// Unit is the time unit of the summary table's Time column.
type Unit int

const (
	UnitMinutes Unit = iota + 1
	UnitHours
	UnitDays
)

func (u Unit) String() string {
	switch u {
	case UnitMinutes:
		return "minutes"
	case UnitHours:
		return "hours"
	case UnitDays:
		return "days"
	}

	return "unknown"
}

// ParseUnit maps a unit name onto a Unit. Accepted, case-insensitively:
// days, d, day, hours, h, hour, minutes, m, min, mins.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "minutes", "min", "mins", "m":
		return UnitMinutes, nil
	case "hours", "hour", "h":
		return UnitHours, nil
	case "days", "day", "d":
		return UnitDays, nil
	}

	return 0, fmt.Errorf("timepoints argument %q not a valid value: days, hours, or minutes", s)
}

// TimeFormatError indicates a time value outside the expected HH:MM:SS
// shape.
type TimeFormatError struct {
	Value string
}

func (e TimeFormatError) Error() string {
	return fmt.Sprintf("time value %q not in expected format, which is HH:MM:SS", e.Value)
}

// TimeLengthError indicates an explicit timepoint list whose length does not
// match the raw table's row count.
type TimeLengthError struct {
	Rows   int
	Values int
}

func (e TimeLengthError) Error() string {
	return fmt.Sprintf("timepoint list is not of correct length: data has %d rows, while time is of length %d", e.Rows, e.Values)
}

// ConvertTimes converts raw "HH:MM:SS" strings into the chosen unit, one
// value per input row, preserving input order. The shape is validated on the
// first row only; the conversion itself is applied to every row.
func ConvertTimes(raw []string, u Unit) ([]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	first := strings.Split(raw[0], ":")
	if len(first) != 3 {
		return nil, TimeFormatError{Value: raw[0]}
	}
	for _, field := range first {
		if len(field) != 2 {
			return nil, TimeFormatError{Value: raw[0]}
		}
	}

	out := make([]float64, 0, len(raw))
	for _, tm := range raw {
		h, m, s, err := splitClock(tm)
		if err != nil {
			return nil, err
		}

		mins := float64(m) + float64(s)/60
		hours := float64(h) + mins/60

		switch u {
		case UnitMinutes:
			out = append(out, mins+float64(h)*60)
		case UnitHours:
			out = append(out, hours)
		case UnitDays:
			out = append(out, hours/24)
		default:
			return nil, fmt.Errorf("unknown time unit %d", u)
		}
	}

	return out, nil
}

func splitClock(tm string) (h, m, s int, err error) {
	parts := strings.Split(tm, ":")
	if len(parts) != 3 {
		return 0, 0, 0, TimeFormatError{Value: tm}
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, TimeFormatError{Value: tm}
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}

// Timepoints selects the x axis of a summary: either the raw table's Time
// column converted into a unit, or an explicit numeric sequence.
type Timepoints struct {
	unit   Unit
	values []float64
}

// InUnit converts the raw Time column into u.
func InUnit(u Unit) Timepoints {
	return Timepoints{unit: u}
}

// Explicit supplies the timepoints directly; the length must match the raw
// table's row count.
func Explicit(values []float64) Timepoints {
	return Timepoints{values: values}
}

func (tp Timepoints) resolve(raw *bsm.RawTable) ([]float64, error) {
	if tp.values != nil {
		if len(tp.values) != raw.Rows() {
			return nil, TimeLengthError{Rows: raw.Rows(), Values: len(tp.values)}
		}
		return tp.values, nil
	}

	unit := tp.unit
	if unit == 0 {
		unit = UnitHours
	}

	return ConvertTimes(raw.Times, unit)
}
