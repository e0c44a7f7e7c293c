package evo

import "errors"

var (
	// ErrInvalidDistribution reports a fitness sequence selection cannot use:
	// empty, misaligned with its population, negative, or summing to zero.
	ErrInvalidDistribution = errors.New("invalid fitness distribution")
	// ErrConfiguration reports a rate or size outside its allowed range.
	ErrConfiguration = errors.New("invalid configuration")
)
