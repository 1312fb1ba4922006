// meta/meta.go
package meta

// SEARCH_DEPTH defines the default search depth in plies.
const SEARCH_DEPTH = 3

// MOVE_TIME_LIMIT_SECONDS defines the per-move limit for human players.
const MOVE_TIME_LIMIT_SECONDS = 15

// MAX_PLIES defines the half-move cap before a game is called off.
const MAX_PLIES = 300

// BENCH_GAMES defines the number of self-play games per benchmark depth.
const BENCH_GAMES = 3
