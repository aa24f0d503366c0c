package constants

// Default values applied to tasks created without explicit placement
const (
	DefaultTaskX      = 100.0
	DefaultTaskY      = 100.0
	DefaultTaskWidth  = 350.0
	DefaultTaskHeight = 200.0
	DefaultTaskColor  = "red"
)

// MaxListResults caps the number of tasks a single list call returns.
// Defensive limit, not something clients should rely on.
const MaxListResults = 1000

// TaskColors is the palette the front end picks from. Not enforced on
// input; any string is stored as-is.
var TaskColors = []string{"red", "teal", "blue", "green", "yellow", "pink", "lightblue", "purple"}
