package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading catalog file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read catalog file")
	ErrFailedToParseFile    = errors.New("failed to parse catalog file")

	// Directory operations
	ErrFailedToAccessDirectory   = errors.New("failed to access directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read directory")
	ErrLoadingCancelled          = errors.New("loading catalog cancelled before starting")

	// Configuration
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
