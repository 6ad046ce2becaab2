package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// JSONParser implements the Parser interface for JSON catalog files.
// The expected layout mirrors the YAML one: locale -> domain -> key.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON content and returns a catalog table.
func (p *JSONParser) Parse(ctx context.Context, content string) (Table, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var table Table
	if err := json.Unmarshal([]byte(content), &table); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("no catalog entries found in JSON content")
	}

	return table, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
