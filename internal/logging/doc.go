// Package logging provides implementations of the replmeta.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes prefixed lines to a writer (stderr by default)
//   - NullLogger: discards all messages
//   - Recorder: keeps all messages in memory, for tests and report capture
//
// All implementations are safe for concurrent use by multiple goroutines.
package logging
