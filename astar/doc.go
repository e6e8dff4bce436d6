// Package astar implements informed least-cost search on a gridworld.Grid.
//
// Search seeds a frontier with the start cell and repeatedly expands the entry
// with the lowest priority f = g + h, where g is the exact accumulated cost
// (the sum of the costs of the cells entered) and h is a Heuristic estimate
// of the remaining cost.
//
// Behavior that differs from the textbook algorithm:
//
//   - Reaching the goal does not stop the search. Every time the goal is
//     popped its path and cost are recorded, and the loop continues until the
//     frontier is empty. The cheapest recorded goal path wins.
//   - A successor is discarded when its cell is already explored or already
//     waiting in the frontier, whatever its cost. There is no decrease-key:
//     the first entry seen for a cell is the only one ever queued.
//   - Ties on priority are broken by insertion order (first in, first out),
//     and successors are inserted in MoveSet order.
//
// The result is a delta sequence: one gridworld.Offset per step of the best
// path, terminated by gridworld.Arrived. An unreachable goal is not an error;
// Result.Found is false and Result.Offsets is nil.
//
// Complexity:
//
//   - Time:  O(N log N) for N passable cells (each cell queued at most once).
//   - Space: O(N·L) where L is the path length stored per frontier entry.
//
// Thread safety:
//
//   - Search keeps all state local to one call. The grid is immutable; the
//     cost table and move set are only read. Concurrent searches sharing a
//     cost table must not edit it while searching (see CostTable.Clone).
package astar
