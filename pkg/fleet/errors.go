package fleet

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrEngineNotFound     = errors.New("engine not found")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateCycle     = errors.New("cycle already exists")
	ErrInvalidCycle       = errors.New("cycle must be a positive integer")
	ErrSerialExists       = errors.New("engine with this serial number already exists")
	ErrInvalidStatus      = errors.New("invalid status. Must be one of: active, maintenance, retired")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInsufficientData   = errors.New("insufficient cycle history")
	ErrInvalidMaintenance = errors.New("invalid maintenance type. Must be one of: scheduled, unscheduled, overhaul")
	ErrInvalidRole        = errors.New("invalid role. Must be one of: admin, engineer, technician")
)

type DuplicateCycleError struct {
	Cycle int
	Next  int
}

func (e *DuplicateCycleError) Error() string {
	return fmt.Sprintf("Cycle data for this engine already exists for cycle %d. Try using cycle %d.", e.Cycle, e.Next)
}

func (e *DuplicateCycleError) Unwrap() error {
	return ErrDuplicateCycle
}

// PersistenceError is a failed write; the surrounding transaction was
// rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// notFound maps gorm's missing-row error onto sentinel.
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
