package repository

import "errors"

// Sentinel errors surfaced by repositories. Services translate them into
// the apierror taxonomy; handlers never see these directly.
var (
	// ErrEstoqueInsuficiente: a conditional stock decrement affected zero
	// rows because quantidade < requested.
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
)
