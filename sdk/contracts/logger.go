package contracts

import "time"

// LogLevel represents the severity level for logging. Implementations map
// each constant onto their own levels.
type LogLevel int

const (
	// DebugLevel indicates messages that help troubleshoot event flow.
	DebugLevel LogLevel = iota - 1
	// InfoLevel indicates informational messages that highlight the progress of the application.
	InfoLevel
	// WarnLevel indicates potentially harmful situations that should be monitored.
	WarnLevel
	// ErrorLevel indicates error messages that represent serious issues that need attention.
	ErrorLevel
	// FatalLevel indicates very severe error events that will presumably lead the application to abort.
	FatalLevel
)

// LogDestination specifies where the log messages should be directed.
type LogDestination string

const (
	// ConsoleLog directs log messages to standard error.
	ConsoleLog LogDestination = "console"
	// FileLog directs log messages to a file.
	FileLog LogDestination = "file"
)

// Field is a typed key/value pair attached to a log entry.
// Each builder method returns a new Field and leaves the receiver untouched.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Time(key string, val time.Time) Field
	Int64(key string, val int64) Field
	Error(key string, val error) Field
	Uint64(key string, val uint64) Field
	Uint8(key string, val uint8) Field
	Duration(key string, val time.Duration) Field
	Any(key string, val interface{}) Field
}

// Logger provides leveled, structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
	SetDestination(dest LogDestination, filePath ...string)
}
