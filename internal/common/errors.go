package common

import "errors"

// Business errors surfaced to callers with a user-facing message.
// Infrastructure failures (connectivity, SQL errors) are never wrapped
// into these; they propagate unchanged.
var (
	ErrDuplicateEmail    = errors.New("a customer with this email already exists")
	ErrCustomerNotFound  = errors.New("customer does not exist")
	ErrProductNotFound   = errors.New("one or more of the submitted products does not exist")
	ErrInsufficientStock = errors.New("one or more of the submitted products does not have the required quantity")
)
