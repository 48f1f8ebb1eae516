// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds the external collaborators the core builds on
type Dependencies struct {
	// Storage is the persistent key-value store
	Storage KeyValueStore

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
