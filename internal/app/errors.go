// Package app provides the demo form application and its coordination.
package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoFields indicates the configuration produced an empty form.
	ErrNoFields = errors.New("no fields configured")

	// ErrInitialization indicates an initialization failure.
	ErrInitialization = errors.New("initialization failed")
)
