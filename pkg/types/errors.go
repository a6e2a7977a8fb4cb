package types

import "errors"

// Lookup errors.
var (
	ErrNotFound          = errors.New("manufacturer not found")
	ErrUnknownCurrency   = errors.New("unknown currency")
	ErrUnknownIngredient = errors.New("unknown basic ingredient")
	ErrUnknownPineapple  = errors.New("unknown pineapple type")
)

// Input errors.
var (
	ErrInvalidAmount = errors.New("amount must be a finite number")
)

// Builder errors.
var (
	ErrIncompleteBuild = errors.New("incomplete build")
)
