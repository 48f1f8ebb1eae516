package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations (logrus, zap, etc.)
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Warn("Discarding corrupt bookmark blob", map[string]interface{}{
//		"key":   "bookmarks.v2",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warnings cover recovered conditions such as corrupt blobs and
	// failed best-effort writes.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
