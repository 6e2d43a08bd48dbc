package booking

import (
	"errors"
	"time"

	"cleaning-scheduler/internal/domain/schedule"
)

var (
	ErrPastDate             = errors.New("booking date must not be in the past")
	ErrNonWorkingDay        = errors.New("bookings cannot be placed on the weekly closing day")
	ErrOutsideWorkingHours  = errors.New("booking must fall within working hours of a single day")
	ErrInvalidTimeRange     = errors.New("booking end must be after start")
	ErrInvalidDuration      = errors.New("booking duration must be 2 or 4 hours")
	ErrInvalidCleanerCount  = errors.New("cleaner count must be between 1 and 3")
)

const (
	MinCleanerCount = 1
	MaxCleanerCount = 3
)

var allowedDurations = map[int]struct{}{2: {}, 4: {}}

type check func(req Request, policy schedule.WorkPolicy) error

// Request is the raw input a validation pass runs over. Start and End are
// kept as plain times on purpose: the chain also guards the ordering
// invariant that schedule.Interval would already enforce.
type Request struct {
	Start        time.Time
	End          time.Time
	CleanerCount int
	Today        time.Time
}

// Validator runs an ordered set of checks and stops at the first failure,
// so a request in the past is reported as past even if it also has a bad
// duration. The order is part of the contract.
type Validator struct {
	policy schedule.WorkPolicy
	checks []check
}

func NewValidator(policy schedule.WorkPolicy) *Validator {
	return &Validator{
		policy: policy,
		checks: []check{
			checkPastDate,
			checkWorkingDay,
			checkWorkingHours,
			checkDuration,
			checkCleanerCount,
		},
	}
}

func (v *Validator) Validate(req Request) error {
	for _, c := range v.checks {
		if err := c(req, v.policy); err != nil {
			return err
		}
	}
	return nil
}

func checkPastDate(req Request, _ schedule.WorkPolicy) error {
	startDay := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, req.Start.Location())
	if startDay.Before(req.Today) {
		return ErrPastDate
	}
	return nil
}

func checkWorkingDay(req Request, policy schedule.WorkPolicy) error {
	if policy.ClosedOn(req.Start) {
		return ErrNonWorkingDay
	}
	return nil
}

func checkWorkingHours(req Request, policy schedule.WorkPolicy) error {
	if !policy.WithinWorkingHours(req.Start, req.End) {
		return ErrOutsideWorkingHours
	}
	return nil
}

func checkDuration(req Request, _ schedule.WorkPolicy) error {
	if !req.Start.Before(req.End) {
		return ErrInvalidTimeRange
	}
	hours := int(req.End.Sub(req.Start) / time.Hour)
	if _, ok := allowedDurations[hours]; !ok {
		return ErrInvalidDuration
	}
	return nil
}

func checkCleanerCount(req Request, _ schedule.WorkPolicy) error {
	if req.CleanerCount < MinCleanerCount || req.CleanerCount > MaxCleanerCount {
		return ErrInvalidCleanerCount
	}
	return nil
}
