package services

import (
	"errors"

	"github.com/terraincognita07/cyclesync/internal/models"
)

var (
	ErrCycleLengthOutOfRange  = errors.New("cycle length out of range")
	ErrPeriodLengthOutOfRange = errors.New("period length out of range")
)

// ValidateCycleSettings enforces the profile-form bounds: 21-45 day cycles,
// 2-10 day periods. The engine itself trusts these as a precondition.
func ValidateCycleSettings(cycleLength int, periodLength int) error {
	if cycleLength < models.MinCycleLength || cycleLength > models.MaxCycleLength {
		return ErrCycleLengthOutOfRange
	}
	if periodLength < models.MinPeriodLength || periodLength > models.MaxPeriodLength {
		return ErrPeriodLengthOutOfRange
	}
	return nil
}
