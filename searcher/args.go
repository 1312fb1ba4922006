package searcher

// Search parameters

const DefaultDepth = 3 // Plies searched by a controller with no WithDepth option

// MateScore is the decisive-outcome magnitude. Evaluations of non-terminal
// positions stay well inside (-MateScore, MateScore).
const MateScore = 20000

// ScoreInfinity bounds the alpha-beta window. Strictly larger than any
// reachable evaluation.
const ScoreInfinity = 1 << 30

const captureBonus = 1000 // Ordering priority for any capture
const checkBonus = 500    // Ordering priority for a checking move

const mobilityWeight = 5 // Centipawns per legal move for the side to move

// endgamePieceCount is the total piece count at or below which the king is
// scored with the endgame table.
const endgamePieceCount = 10
