package service

import "errors"

// Workflow error taxonomy. Every one of these is recoverable: the HTTP layer
// maps each to a status and a user-visible message, and the action that
// raised it is treated as not having happened.
var (
	// ErrDuplicateUser means the requested username is already taken.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrInvalidInput means a request carried bad user or product data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is the single generic authentication failure.
	// Unknown usernames and wrong passwords both collapse into it so the
	// boundary never leaks which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyCart means an order was placed with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
