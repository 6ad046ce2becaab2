package i18n

import (
	"context"
	"strings"
)

// Parser is an interface for parsing catalog content from various file
// formats into the locale/domain/key table.
type Parser interface {
	// Parse processes the given content string and returns a catalog table.
	// The outer map is keyed by locale identifier, the next level by
	// translation domain, the innermost by message key.
	Parse(ctx context.Context, content string) (Table, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot (e.g. both "json" and ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser based on the file extension, or nil when the
// format is not supported.
func ParserForFile(filename string) Parser {
	ext := getFileExtension(filename)

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// getFileExtension extracts the extension from a filename
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
