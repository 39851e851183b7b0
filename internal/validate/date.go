// Package validate decides whether candidate course dates are acceptable.
// All checks are pure and side-effect free so callers can validate
// speculatively before committing a state transition: on rejection the
// mutation is simply not dispatched.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/coursetrack/internal/domain"
)

// Code identifies the first policy check a date failed.
type Code string

const (
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeStartAfterEnd Code = "START_AFTER_END"
	CodeFutureDate    Code = "FUTURE_DATE"
	CodeInvalidRange  Code = "INVALID_RANGE"
	CodeRequiredField Code = "REQUIRED_FIELD"
)

// Result is the outcome of a validation call. Valid results carry an empty
// message; invalid results carry exactly one code and one human-readable
// reason (first failing check wins).
type Result struct {
	Valid   bool
	Code    Code
	Message string
}

// Options configures a validation call. The zero value accepts any
// well-formed optional date.
type Options struct {
	// Required rejects an absent date.
	Required bool

	// MinDate and MaxDate are inclusive calendar bounds.
	MinDate *time.Time
	MaxDate *time.Time

	// DisallowFutureDates rejects dates strictly after today at midnight.
	DisallowFutureDates bool

	// RequireFutureDates rejects dates on or before today at midnight.
	RequireFutureDates bool

	// WarnFutureDates is a softer future check compared against wall-clock
	// "now" rather than today at midnight. The two reference points are
	// deliberately distinct; do not unify them.
	WarnFutureDates bool

	// Messages overrides the default reason text per code. Missing entries
	// fall back to the built-in messages.
	Messages map[Code]string

	// Now overrides the wall clock, for tests.
	Now *time.Time
}

// ParseDate parses a YYYY-MM-DD string into a midnight-normalized UTC time.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(domain.DateLayout, strings.TrimSpace(raw))
}

// Date validates a single optional date string against opts.
//
// Checks run in fixed order: presence, format, min/max range, hard future
// checks against today-at-midnight, then the soft future check against now.
func Date(raw string, opts Options) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if opts.Required {
			return opts.fail(CodeRequiredField, "a date is required")
		}
		return ok()
	}

	date, err := ParseDate(raw)
	if err != nil {
		return opts.fail(CodeInvalidFormat, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", raw))
	}

	if opts.MinDate != nil && date.Before(*opts.MinDate) {
		return opts.fail(CodeInvalidRange, fmt.Sprintf("date must be on or after %s", opts.MinDate.Format(domain.DateLayout)))
	}
	if opts.MaxDate != nil && date.After(*opts.MaxDate) {
		return opts.fail(CodeInvalidRange, fmt.Sprintf("date must be on or before %s", opts.MaxDate.Format(domain.DateLayout)))
	}

	now := opts.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if opts.DisallowFutureDates && date.After(midnight) {
		return opts.fail(CodeFutureDate, fmt.Sprintf("date %s must not be in the future", raw))
	}
	if opts.RequireFutureDates && !date.After(midnight) {
		return opts.fail(CodeFutureDate, fmt.Sprintf("date %s must be in the future", raw))
	}
	if opts.WarnFutureDates && date.After(now) {
		return opts.fail(CodeFutureDate, fmt.Sprintf("date %s is in the future", raw))
	}

	return ok()
}

// DateRange validates a (start, end) pair. A pair with either side absent is
// vacuously valid: partial data is permitted. Equal dates are valid, a course
// may start and end the same day.
func DateRange(startRaw, endRaw string, opts Options) Result {
	startRaw = strings.TrimSpace(startRaw)
	endRaw = strings.TrimSpace(endRaw)
	if startRaw == "" || endRaw == "" {
		return ok()
	}

	start, err := ParseDate(startRaw)
	if err != nil {
		return opts.fail(CodeInvalidFormat, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", startRaw))
	}
	end, err := ParseDate(endRaw)
	if err != nil {
		return opts.fail(CodeInvalidFormat, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", endRaw))
	}

	if start.After(end) {
		return opts.fail(CodeStartAfterEnd, fmt.Sprintf("start date %s is after end date %s", startRaw, endRaw))
	}
	return ok()
}

// CourseDate validates a course date edit: the date alone first, then the
// resulting (start, end) pair when both sides are present. isStart says which
// side of the pair raw is; other is the course's existing opposite date.
func CourseDate(raw, other string, isStart bool, opts Options) Result {
	if r := Date(raw, opts); !r.Valid {
		return r
	}
	if strings.TrimSpace(raw) == "" || strings.TrimSpace(other) == "" {
		return ok()
	}
	if isStart {
		return DateRange(raw, other, opts)
	}
	return DateRange(other, raw, opts)
}

func ok() Result {
	return Result{Valid: true}
}

func (o Options) fail(code Code, msg string) Result {
	if override, found := o.Messages[code]; found && override != "" {
		msg = override
	}
	return Result{Code: code, Message: msg}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now.UTC()
	}
	return time.Now().UTC()
}
