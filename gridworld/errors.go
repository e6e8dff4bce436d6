package gridworld

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrEmptySymbol indicates an empty impassable marker or an empty cell.
	ErrEmptySymbol = errors.New("gridworld: terrain symbol must not be empty")
	// ErrNegativeCost indicates a cost table entry below zero.
	ErrNegativeCost = errors.New("gridworld: traversal cost must be non-negative")
	// ErrMissingCost indicates a passable symbol of the grid has no cost entry.
	ErrMissingCost = errors.New("gridworld: no cost for terrain symbol")
	// ErrEmptyMoveSet indicates a move set without any offset.
	ErrEmptyMoveSet = errors.New("gridworld: move set must not be empty")
	// ErrDuplicateMove indicates the same offset was given twice.
	ErrDuplicateMove = errors.New("gridworld: duplicate move offset")
	// ErrInvalidMove indicates an offset that is not a unit cardinal step.
	ErrInvalidMove = errors.New("gridworld: move must be a unit cardinal offset")
	// ErrUnknownMove indicates an unrecognised direction name.
	ErrUnknownMove = errors.New("gridworld: unknown move name")
)
