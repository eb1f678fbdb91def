package services

import "errors"

var (
	ErrOrderNotFound             = errors.New("order not found")
	ErrProductNotFound           = errors.New("product not found")
	ErrSessionNotFound           = errors.New("register session not found")
	ErrInvalidTransition         = errors.New("order is in a terminal status and cannot change")
	ErrInsufficientStock         = errors.New("insufficient stock")
	ErrInsufficientReservedStock = errors.New("insufficient reserved stock")
	ErrRegisterAlreadyOpen       = errors.New("a register session is already open")
	ErrSessionClosed             = errors.New("register session is already closed")
	ErrTableNotFound             = errors.New("table not found")
	ErrEmptyOrder                = errors.New("order has no items")
)
