package models

import "errors"

// Validation and lookup errors shared across the service.
var (
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidExpiration = errors.New("invalid expiration date")
	ErrInvalidTradeDate  = errors.New("invalid trade date")
	ErrInvalidSide       = errors.New("side must be \"call\" or \"put\"")
	ErrInvalidStrike     = errors.New("strike must be positive")
	ErrInvalidMetric     = errors.New("unknown metric")
	ErrNotFound          = errors.New("not found")
)
