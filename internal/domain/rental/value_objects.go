package rental

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingDates     = errors.New("start date and end date are required")
	ErrInvalidDate      = errors.New("dates must use the YYYY-MM-DD format")
	ErrMissingTimes     = errors.New("start time and end time are required")
	ErrIncompleteTimes  = errors.New("start time and end time must be given together")
	ErrInvalidTime      = errors.New("times must use the HH:MM format")
	ErrEndNotAfterStart = errors.New("end must be after start")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Period is the requested rental window. Dates are kept as entered; times
// are optional and then both present or both empty.
type Period struct {
	startDate string
	endDate   string
	startTime string
	endTime   string
	start     time.Time
	end       time.Time
}

// NewPeriod validates the window. Without times the dates alone are compared,
// so a same-day request needs times to be valid.
func NewPeriod(startDate, endDate, startTime, endTime string, requireTimes bool) (Period, error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)
	startTime = strings.TrimSpace(startTime)
	endTime = strings.TrimSpace(endTime)

	if startDate == "" || endDate == "" {
		return Period{}, ErrMissingDates
	}
	switch {
	case startTime == "" && endTime == "":
		if requireTimes {
			return Period{}, ErrMissingTimes
		}
	case startTime == "" || endTime == "":
		return Period{}, ErrIncompleteTimes
	}

	sd, err := instant(startDate, startTime)
	if err != nil {
		return Period{}, err
	}
	ed, err := instant(endDate, endTime)
	if err != nil {
		return Period{}, err
	}

	if !ed.After(sd) {
		return Period{}, ErrEndNotAfterStart
	}

	return Period{
		startDate: startDate,
		endDate:   endDate,
		startTime: startTime,
		endTime:   endTime,
		start:     sd,
		end:       ed,
	}, nil
}

// ReconstructPeriod skips validation; persisted requests were validated
// when submitted.
func ReconstructPeriod(startDate, endDate, startTime, endTime string) Period {
	p := Period{startDate: startDate, endDate: endDate, startTime: startTime, endTime: endTime}
	if sd, err := instant(startDate, startTime); err == nil {
		p.start = sd
	}
	if ed, err := instant(endDate, endTime); err == nil {
		p.end = ed
	}
	return p
}

// instant is the UTC moment for date at clock, or midnight when clock is empty.
func instant(date, clock string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if clock == "" {
		return d, nil
	}
	c, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return d.Add(time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute), nil
}

func (p Period) StartDate() string { return p.startDate }
func (p Period) EndDate() string   { return p.endDate }
func (p Period) StartTime() string { return p.startTime }
func (p Period) EndTime() string   { return p.endTime }
func (p Period) HasTimes() bool    { return p.startTime != "" }
func (p Period) Start() time.Time  { return p.start }
func (p Period) End() time.Time    { return p.end }

// Days counts calendar days touched by the window, inclusive.
func (p Period) Days() int {
	if p.start.IsZero() || p.end.IsZero() {
		return 0
	}
	sd := time.Date(p.start.Year(), p.start.Month(), p.start.Day(), 0, 0, 0, 0, time.UTC)
	ed := time.Date(p.end.Year(), p.end.Month(), p.end.Day(), 0, 0, 0, 0, time.UTC)
	return int(ed.Sub(sd).Hours()/24) + 1
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
