package domain

import "errors"

// Guard violations are returned as typed failures and never retried by the
// core; the transport maps them to status codes. Store failures that are
// not one of these sentinels are dependency errors and pass through
// wrapped.
var (
	ErrQuestNotFound = errors.New("quest not found")

	ErrQuestFull = errors.New("quest is full")

	ErrQuestNotJoinable           = errors.New("quest is not joinable")
	ErrQuestNotLeavable           = errors.New("quest is not leavable")
	ErrInvalidLaunchCondition     = errors.New("invalid condition to launch quest")
	ErrInvalidCompletionCondition = errors.New("invalid condition to complete quest")
	ErrInvalidFailureCondition    = errors.New("invalid condition to fail quest")

	ErrDuplicateMembership = errors.New("adventurer has already joined quest")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrQuestHasCrew        = errors.New("quest still has crew members")

	ErrEmptyUsername  = errors.New("username is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyQuestName = errors.New("quest name is required")
)

// IsInvalidArgument reports whether err is a caller input validation
// failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrEmptyUsername) ||
		errors.Is(err, ErrEmptyPassword) ||
		errors.Is(err, ErrEmptyQuestName)
}

// IsNotFound reports whether err is an absent-record failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuestNotFound)
}

// IsCapacityExceeded reports whether err is a roster capacity violation.
func IsCapacityExceeded(err error) bool {
	return errors.Is(err, ErrQuestFull)
}

// IsIllegalTransition reports whether err is a lifecycle guard violation.
func IsIllegalTransition(err error) bool {
	return errors.Is(err, ErrQuestNotJoinable) ||
		errors.Is(err, ErrQuestNotLeavable) ||
		errors.Is(err, ErrInvalidLaunchCondition) ||
		errors.Is(err, ErrInvalidCompletionCondition) ||
		errors.Is(err, ErrInvalidFailureCondition)
}

// IsConflict reports whether err is a uniqueness or occupancy conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateMembership) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrQuestHasCrew)
}
