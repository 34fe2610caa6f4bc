package apperrors

import "errors"

// ErrInvalidName indicates that a user name is blank after trimming whitespace.
var ErrInvalidName = errors.New("user name cannot be empty")

// ErrInvalidAmount indicates that a cash amount is zero or negative.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrInvalidQuantity indicates that a share quantity is zero or negative.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// ErrInsufficientFunds indicates that the cash balance cannot cover the requested
// withdrawal or purchase.
var ErrInsufficientFunds = errors.New("insufficient balance")

// ErrInsufficientShares indicates that a sell requests more shares than are held.
var ErrInsufficientShares = errors.New("insufficient shares")

// ErrUnknownSymbol indicates that the price oracle has no price for a symbol.
var ErrUnknownSymbol = errors.New("invalid symbol or price unavailable")

// ErrNoSuchHolding indicates a sell against a symbol the account does not hold.
var ErrNoSuchHolding = errors.New("no holding for symbol")
