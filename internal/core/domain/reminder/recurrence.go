package reminder

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

var (
	ErrInvalidRecurrence   = errors.New("invalid recurrence")
	ErrParseRecurrenceKind = errors.New("invalid recurrence kind")
)

const MIN_CUSTOM_INTERVAL = time.Minute

type RecurrenceKind struct {
	v string
}

func (k RecurrenceKind) String() string {
	return k.v
}

func ParseRecurrenceKind(value string) (RecurrenceKind, error) {
	switch value {
	case "daily":
		return KindDaily, nil
	case "weekly":
		return KindWeekly, nil
	case "monthly":
		return KindMonthly, nil
	case "custom":
		return KindCustom, nil
	default:
		return KindUnknown, ErrParseRecurrenceKind
	}
}

var (
	KindUnknown = RecurrenceKind{}
	KindDaily   = RecurrenceKind{v: "daily"}
	KindWeekly  = RecurrenceKind{v: "weekly"}
	KindMonthly = RecurrenceKind{v: "monthly"}
	KindCustom  = RecurrenceKind{v: "custom"}
)

// Weekday numbering follows the wire format: 0 is Monday, 6 is Sunday.
type Weekday int

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < 0 || d > 6 {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Recurrence is a tagged variant: Kind selects which of the
// kind-specific fields are meaningful. Validate enforces that the
// other fields stay zero.
type Recurrence struct {
	Kind RecurrenceKind
	// Weekdays is for KindWeekly. An empty set means plain +7 days.
	Weekdays []Weekday
	// MonthDay is for KindMonthly: a day-of-month override in 1..31,
	// clipped to the month length. Zero follows the due date's day.
	MonthDay int
	// Interval is for KindCustom, the only kind with sub-day granularity.
	Interval time.Duration
}

func NewDaily() Recurrence {
	return Recurrence{Kind: KindDaily}
}

func NewWeekly(weekdays ...Weekday) Recurrence {
	return Recurrence{Kind: KindWeekly, Weekdays: weekdays}
}

func NewMonthly(monthDay int) Recurrence {
	return Recurrence{Kind: KindMonthly, MonthDay: monthDay}
}

func NewCustom(interval time.Duration) Recurrence {
	return Recurrence{Kind: KindCustom, Interval: interval}
}

func (r Recurrence) IsZero() bool {
	return r.Kind == KindUnknown && len(r.Weekdays) == 0 && r.MonthDay == 0 && r.Interval == 0
}

func (r Recurrence) Validate() error {
	switch r.Kind {
	case KindDaily:
		if len(r.Weekdays) != 0 || r.MonthDay != 0 || r.Interval != 0 {
			return ErrInvalidRecurrence
		}
	case KindWeekly:
		if r.MonthDay != 0 || r.Interval != 0 {
			return ErrInvalidRecurrence
		}
		for _, weekday := range r.Weekdays {
			if weekday < 0 || weekday > 6 {
				return ErrInvalidRecurrence
			}
		}
	case KindMonthly:
		if len(r.Weekdays) != 0 || r.Interval != 0 {
			return ErrInvalidRecurrence
		}
		if r.MonthDay < 0 || r.MonthDay > 31 {
			return ErrInvalidRecurrence
		}
	case KindCustom:
		if len(r.Weekdays) != 0 || r.MonthDay != 0 {
			return ErrInvalidRecurrence
		}
		if r.Interval < MIN_CUSTOM_INTERVAL {
			return ErrInvalidRecurrence
		}
	default:
		return ErrInvalidRecurrence
	}
	return nil
}

// NextFrom computes the occurrence that follows t. It is pure: the
// result depends only on the pattern and t, never on the wall clock,
// and is always strictly later than t.
func (r Recurrence) NextFrom(t time.Time) time.Time {
	switch r.Kind {
	case KindDaily:
		return carbon.Time2Carbon(t).AddDay().Carbon2Time()
	case KindWeekly:
		return carbon.Time2Carbon(t).AddDays(r.daysUntilNextWeekday(t)).Carbon2Time()
	case KindMonthly:
		next := carbon.Time2Carbon(t).AddMonthsNoOverflow(1).Carbon2Time()
		if r.MonthDay == 0 {
			return next
		}
		lastDay := time.Date(next.Year(), next.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
		day := r.MonthDay
		if day > lastDay {
			day = lastDay
		}
		return time.Date(
			next.Year(), next.Month(), day,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location(),
		)
	case KindCustom:
		return t.Add(r.Interval)
	default:
		panic(fmt.Sprintf("unexpected recurrence kind: %v", r.Kind))
	}
}

func (r Recurrence) daysUntilNextWeekday(t time.Time) int {
	if len(r.Weekdays) == 0 {
		return 7
	}
	// time.Weekday is Sunday-based, the pattern is Monday-based.
	current := (int(t.Weekday()) + 6) % 7
	minDays := 7
	for _, weekday := range r.Weekdays {
		days := (int(weekday) - current + 7) % 7
		if days == 0 {
			days = 7
		}
		if days < minDays {
			minDays = days
		}
	}
	return minDays
}

func (r Recurrence) String() string {
	switch r.Kind {
	case KindDaily:
		return "Every day"
	case KindWeekly:
		if len(r.Weekdays) == 0 {
			return "Every week"
		}
		weekdays := append([]Weekday{}, r.Weekdays...)
		sort.Slice(weekdays, func(i, j int) bool { return weekdays[i] < weekdays[j] })
		names := make([]string, len(weekdays))
		for ix, weekday := range weekdays {
			names[ix] = weekday.String()
		}
		return "Weekly on " + strings.Join(names, ", ")
	case KindMonthly:
		if r.MonthDay == 0 {
			return "Every month"
		}
		return fmt.Sprintf("Monthly on day %d", r.MonthDay)
	case KindCustom:
		return fmt.Sprintf("Every %s", r.Interval)
	default:
		return "Unknown"
	}
}

type recurrenceJSON struct {
	Type     string `json:"type"`
	Days     []int  `json:"days,omitempty"`
	Day      int    `json:"day,omitempty"`
	Interval string `json:"interval,omitempty"`
}

func (r Recurrence) MarshalJSON() ([]byte, error) {
	wire := recurrenceJSON{Type: r.Kind.String(), Day: r.MonthDay}
	if len(r.Weekdays) > 0 {
		wire.Days = make([]int, len(r.Weekdays))
		for ix, weekday := range r.Weekdays {
			wire.Days[ix] = int(weekday)
		}
	}
	if r.Interval != 0 {
		wire.Interval = r.Interval.String()
	}
	return json.Marshal(wire)
}

func (r *Recurrence) UnmarshalJSON(data []byte) error {
	var wire recurrenceJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	kind, err := ParseRecurrenceKind(wire.Type)
	if err != nil {
		return err
	}
	decoded := Recurrence{Kind: kind, MonthDay: wire.Day}
	if len(wire.Days) > 0 {
		decoded.Weekdays = make([]Weekday, len(wire.Days))
		for ix, day := range wire.Days {
			decoded.Weekdays[ix] = Weekday(day)
		}
	}
	if wire.Interval != "" {
		interval, err := time.ParseDuration(wire.Interval)
		if err != nil {
			return ErrInvalidRecurrence
		}
		decoded.Interval = interval
	}
	*r = decoded
	return nil
}
