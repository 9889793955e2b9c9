// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth used when none is configured.
const DEFAULT_DEPTH = 4

// MAX_QUIESCENCE caps quiescence extensions per root move.
const MAX_QUIESCENCE = 5000 * 5

// MAX_TURNS ends a self-play game as a draw after this many plies.
const MAX_TURNS = 300

// REPETITIONS of the same position end a self-play game as a draw.
const REPETITIONS = 3
