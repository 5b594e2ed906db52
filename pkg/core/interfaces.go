package core

// Logger receives progress messages from the renderer
type Logger interface {
	Printf(format string, args ...interface{})
}
