package interpreter

import "errors"

var (
	ErrUnparsablePrice = errors.New("price is not a number")
	ErrNegativePrice   = errors.New("price is negative")
	ErrPriceOutOfRange = errors.New("price is out of range")
)
