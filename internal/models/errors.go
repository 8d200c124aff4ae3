package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource for the ID you specified")

	ErrOwnerInvalid           = errors.New("the owner must be a valid account address")
	ErrDestinationInvalid     = errors.New("the savings destination must be a valid account address")
	ErrIncrementNotInteger    = errors.New("the round-up increment must be an integer amount of the smallest unit")
	ErrIncrementNegative      = errors.New("the round-up increment must not be negative")
	ErrTopUpAmountNotPositive = errors.New("top-up amounts must be larger than zero")
)
