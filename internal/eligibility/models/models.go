// Package models holds the request-scoped value objects of the visit-session
// eligibility engine. Nothing here performs I/O or reads the clock.
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-date format used on every wire boundary.
const DateLayout = "2006-01-02"

// SessionRestriction is the OPEN or CLOSED visit type of a session.
type SessionRestriction string

const (
	SessionRestrictionOpen   SessionRestriction = "OPEN"
	SessionRestrictionClosed SessionRestriction = "CLOSED"
)

// ParseSessionRestriction accepts OPEN or CLOSED in any case.
func ParseSessionRestriction(s string) (SessionRestriction, error) {
	switch SessionRestriction(strings.ToUpper(strings.TrimSpace(s))) {
	case SessionRestrictionOpen:
		return SessionRestrictionOpen, nil
	case SessionRestrictionClosed:
		return SessionRestrictionClosed, nil
	}
	return "", fmt.Errorf("unknown session restriction %q", s)
}

// UserType identifies which booking channel is asking.
type UserType string

const (
	UserTypeStaff  UserType = "STAFF"
	UserTypePublic UserType = "PUBLIC"
)

// ParseUserType accepts STAFF or PUBLIC in any case.
func ParseUserType(s string) (UserType, error) {
	switch UserType(strings.ToUpper(strings.TrimSpace(s))) {
	case UserTypeStaff:
		return UserTypeStaff, nil
	case UserTypePublic:
		return UserTypePublic, nil
	}
	return "", fmt.Errorf("unknown user type %q", s)
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// DateRange is an inclusive calendar-date interval with From <= To.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange normalises both bounds to calendar days. A range whose bounds
// would be inverted collapses to the single day From.
func NewDateRange(from, to time.Time) DateRange {
	from, to = Day(from), Day(to)
	if to.Before(from) {
		to = from
	}
	return DateRange{From: from, To: to}
}

// Contains reports whether day lies within the range, bounds included.
func (r DateRange) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(r.From) && !day.After(r.To)
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	return !o.To.Before(r.From) && !o.From.After(r.To)
}

// Covers reports whether r contains every day of o.
func (r DateRange) Covers(o DateRange) bool {
	return !r.From.After(o.From) && !r.To.Before(o.To)
}

func (r DateRange) String() string {
	return r.From.Format(DateLayout) + ".." + r.To.Format(DateLayout)
}

// PrisonPolicy is the per-prison booking notice configuration.
type PrisonPolicy struct {
	PrisonCode          string
	Active              bool
	PolicyNoticeDaysMin int
	PolicyNoticeDaysMax int
}

// Clock is a time of day in minutes after midnight.
type Clock int

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(s string) (Clock, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return Clock(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// ClockOf extracts the time of day from t.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// TimeSlot is the start and end time of a session on its date.
type TimeSlot struct {
	Start Clock
	End   Clock
}

// AvailableVisitSession is a candidate bookable slot.
type AvailableVisitSession struct {
	SessionDate              time.Time
	SessionTemplateReference string
	TimeSlot                 TimeSlot
	SessionRestriction       SessionRestriction
	SessionForReview         bool
}

// RestrictionInterval is a review-relevant period from a prisoner restriction,
// a prisoner alert or a visitor restriction. A nil Expiry is open-ended.
type RestrictionInterval struct {
	Kind   string
	Start  time.Time
	Expiry *time.Time
}

// Unbounded reports whether the interval has no expiry.
func (ri RestrictionInterval) Unbounded() bool {
	return ri.Expiry == nil
}

// Within resolves the interval against window: an open-ended interval runs to
// window.To. ok is false when the interval is empty or misses the window.
func (ri RestrictionInterval) Within(window DateRange) (DateRange, bool) {
	start := Day(ri.Start)
	end := window.To
	if ri.Expiry != nil {
		end = Day(*ri.Expiry)
	}
	if end.Before(start) {
		return DateRange{}, false
	}
	r := DateRange{From: start, To: end}
	if !r.Overlaps(window) {
		return DateRange{}, false
	}
	return r, true
}

// PrisonerRestriction is an active restriction on the prisoner's record.
type PrisonerRestriction struct {
	Type       string
	StartDate  time.Time
	ExpiryDate *time.Time
}

// PrisonerAlert is an alert on the prisoner's record.
type PrisonerAlert struct {
	Code       string
	ActiveFrom time.Time
	ActiveTo   *time.Time
}

// ScheduledEvent is a prisoner appointment. Nil Start or End means all day.
type ScheduledEvent struct {
	EventType    string
	EventSubType string
	Date         time.Time
	Start        *Clock
	End          *Clock
}

// BankHoliday is a public holiday.
type BankHoliday struct {
	Date  time.Time
	Title string
}

// SessionQuery is the input to the available-sessions collaborator.
type SessionQuery struct {
	PrisonCode                   string
	PrisonerID                   string
	SessionRestriction           SessionRestriction
	Window                       DateRange
	UserType                     UserType
	ExcludedApplicationReference string
}
