package planner

import "errors"

// Common errors returned by the planner.
var (
	// ErrCreateDir is returned when a destination directory cannot be created.
	ErrCreateDir = errors.New("failed to create destination directory")

	// ErrProbe is returned when a collision probe cannot stat a candidate.
	ErrProbe = errors.New("failed to probe destination path")

	// ErrProbesExhausted is returned when the bounded disambiguator search
	// finds no free name. Fatal for the file, not the run.
	ErrProbesExhausted = errors.New("collision disambiguation exhausted")

	// ErrContentPresent is returned by ResolveTarget when the planned
	// target already holds a file with the same content digest. Not a
	// failure: the caller treats the file as a duplicate.
	ErrContentPresent = errors.New("identical content already at destination")
)
