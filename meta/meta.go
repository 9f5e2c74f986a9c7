// meta/meta.go
package meta

// WORKERS defines the number of games played concurrently by the experiments.
const WORKERS = 8

// GAMES defines the number of games per matchup.
const GAMES = 20

// DEPTH defines the search depth of depth-limited agents.
const DEPTH = 4

// MAX_TURNS defines the number of turns after which a game is abandoned.
const MAX_TURNS = 300
