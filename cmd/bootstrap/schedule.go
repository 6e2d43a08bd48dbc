package bootstrap

import (
	"time"

	"cleaning-scheduler/internal/domain/booking"
	"cleaning-scheduler/internal/domain/cleaner"
	"cleaning-scheduler/internal/domain/schedule"
	"cleaning-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewWorkPolicy,
		booking.NewValidator,
		NewAssignFunc,
	),
)

func NewWorkPolicy(cfg config.Config) (schedule.WorkPolicy, error) {
	start, err := schedule.ParseTimeOfDay(cfg.Schedule.WorkStart)
	if err != nil {
		return schedule.WorkPolicy{}, err
	}
	end, err := schedule.ParseTimeOfDay(cfg.Schedule.WorkEnd)
	if err != nil {
		return schedule.WorkPolicy{}, err
	}
	closed, err := schedule.ParseWeekday(cfg.Schedule.ClosedWeekday)
	if err != nil {
		return schedule.WorkPolicy{}, err
	}
	return schedule.NewWorkPolicy(start, end, time.Duration(cfg.Schedule.BreakMinutes)*time.Minute, closed)
}

func NewAssignFunc() cleaner.AssignFunc {
	return cleaner.AssignSameVehicle
}
