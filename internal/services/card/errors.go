package card

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrCardNotFound  = errors.New("card not found or access denied")
	ErrMissingFields = errors.New("missing required card fields")
)
