// meta/meta.go
package meta

// DefaultRows is the board height used when none is given.
const DefaultRows = 5

// DefaultCols is the board width used when none is given.
const DefaultCols = 6

// DefaultDepth is the heuristic search limit used when none is given.
const DefaultDepth = 4

// DefaultSeed seeds random agents that are not given one.
const DefaultSeed uint64 = 1

// DefaultConcurrency bounds the games an experiment plays at once.
const DefaultConcurrency = 4

// DefaultOutput is the directory experiment results are written under.
const DefaultOutput = "experiments"
