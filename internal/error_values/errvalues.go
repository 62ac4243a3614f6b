package errorvalues

import "errors"

var (
	ErrUserExists      = errors.New("such user already exists")
	ErrUserNotFound    = errors.New("user doesn't exists")
	ErrHabitNotFound   = errors.New("habit doesn't exists")
	ErrWrongOwner      = errors.New("habit belongs to another user")
	ErrAlreadyLogged   = errors.New("progress already logged for this day")
	ErrInsufficientXP  = errors.New("not enough xp")
	ErrFinanceNotFound = errors.New("finance profile doesn't exists")
	ErrInvalidToken    = errors.New("invalid token")
)
