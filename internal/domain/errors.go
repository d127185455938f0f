package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCommitInProgress  = errors.New("a commit is already in progress")
	ErrIllegalTransition = errors.New("illegal state transition")
	ErrInvalidBreakLimit = errors.New("break limit must be a positive number of minutes")
	ErrInvalidTaskName   = errors.New("task name cannot be empty")
	ErrNoTaskSelected    = errors.New("no task selected")
	ErrTaskExists        = errors.New("task already exists")
	ErrTaskNotFound      = errors.New("task not found")
)

// Transition errors wrap ErrIllegalTransition so callers can match either.
var (
	ErrAlreadyOnBreak   = fmt.Errorf("%w: already on break", ErrIllegalTransition)
	ErrFinishNotArmed   = fmt.Errorf("%w: finish must be clicked once before holding", ErrIllegalTransition)
	ErrOnBreak          = fmt.Errorf("%w: timer cannot run during a break", ErrIllegalTransition)
	ErrTaskAlreadyBound = fmt.Errorf("%w: another task is bound to the timer", ErrIllegalTransition)
	ErrTimerIdle        = fmt.Errorf("%w: timer is idle", ErrIllegalTransition)
	ErrTimerStopped     = fmt.Errorf("%w: timer is stopped and waiting for commit", ErrIllegalTransition)
)
