package ports

// LoggerPort decouples core logic from the logging backend.
type LoggerPort interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string, err error)
	Close()
}
