package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML catalog files.
//
// Expected layout, locale at the top level:
//
//	en:
//	  errors:
//	    "can't be blank": "can't be blank"
//	  schema_fields:
//	    username: "username"
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns a catalog table.
func (p *YAMLParser) Parse(ctx context.Context, content string) (Table, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var table Table
	if err := yaml.Unmarshal([]byte(content), &table); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("no catalog entries found in YAML content")
	}

	return table, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
