// Package gridworld models a rectangular terrain grid for least-cost path search.
//
// What:
//
//   - Grid wraps an immutable [][]Symbol with one reserved impassable symbol.
//   - CostTable maps every passable symbol to a non-negative traversal cost.
//   - MoveSet holds the allowed single-step directions (any non-empty subset of
//     the four cardinal offsets), in caller order.
//   - Successors returns the in-bounds, passable neighbors of a cell.
//
// Coordinates:
//
//   - Position is (Row, Col) and is used everywhere inside the module.
//   - Point is (X, Y) = (Col, Row), the convention callers type in.
//   - Point.Position is the single conversion between the two.
//
// Complexity:
//
//   - NewGrid:     O(W×H) time and memory (deep copy).
//   - Successors:  O(d), d = len(MoveSet) ≤ 4.
//   - Validate:    O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrEmptySymbol: malformed grid.
//   - ErrNegativeCost, ErrMissingCost: cost table does not cover the grid.
//   - ErrEmptyMoveSet, ErrDuplicateMove, ErrInvalidMove, ErrUnknownMove: bad move set.
package gridworld
