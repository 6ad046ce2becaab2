package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// Table is the raw catalog content: locale -> domain -> message key ->
// template. Templates use the same %{name} placeholder syntax as the error
// details they translate.
type Table map[string]map[string]map[string]string

// CatalogSource defines how catalog entries are loaded.
type CatalogSource interface {
	Load(ctx context.Context) (Table, error)
}

// MapSource is a simple source that uses an in-memory table as the catalog
// content. Useful for tests and hard-coded catalogs.
type MapSource struct {
	Data Table
}

// Load implements the CatalogSource interface.
func (s *MapSource) Load(_ context.Context) (Table, error) {
	if s.Data == nil {
		return make(Table), nil
	}
	return s.Data, nil
}

// FileSource loads catalog entries from a single file on disk.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource creates a new FileSource instance.
// Returns nil if parser is nil or path is empty.
func NewFileSource(parser Parser, path string) *FileSource {
	if parser == nil {
		return nil
	}
	if path == "" {
		return nil
	}
	return &FileSource{parser: parser, path: path}
}

// Load implements the CatalogSource interface.
func (s *FileSource) Load(ctx context.Context) (Table, error) {
	if s.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if s.path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	content, err := readFileCtx(ctx, s.path)
	if err != nil {
		return nil, err
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("catalog file '%s' is empty", s.path)
	}

	table, err := s.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if table == nil {
		return nil, fmt.Errorf("parser returned nil table for file '%s'", s.path)
	}

	return table, nil
}

// DirSource loads catalog entries from every supported file in a directory,
// merging them into one table. One file per locale is the usual layout, but
// any split works since tables are merged key by key.
type DirSource struct {
	parser Parser
	path   string
}

// NewDirSource creates a new DirSource instance.
// Returns nil if parser is nil or path is empty.
func NewDirSource(parser Parser, path string) *DirSource {
	if parser == nil {
		return nil
	}
	if path == "" {
		return nil
	}
	return &DirSource{parser: parser, path: path}
}

// Load implements the CatalogSource interface.
func (s *DirSource) Load(ctx context.Context) (Table, error) {
	if s.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if s.path == "" {
		return nil, fmt.Errorf("directory path is empty")
	}

	fileInfo, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path '%s' is not a directory", s.path)
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(Table)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supportsFile(s.parser, entry.Name()) {
			continue
		}

		// Check context before processing each file
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		filePath := filepath.Join(s.path, entry.Name())
		content, err := readFileCtx(ctx, filePath)
		if err != nil {
			return nil, err
		}
		if len(content) == 0 {
			continue
		}

		table, err := s.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("file '%s': %w", filePath, err))
		}
		mergeTable(all, table)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no valid catalog files found in directory '%s'", s.path)
	}

	return all, nil
}

// FSSource loads catalog entries from a directory inside any fs.FS,
// including an embed.FS with the translation files compiled in.
type FSSource struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSSource creates a new FSSource instance.
// Returns nil if parser or fsys is nil, or dir is empty.
func NewFSSource(parser Parser, fsys fs.FS, dir string) *FSSource {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		return nil
	}
	return &FSSource{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the CatalogSource interface.
func (s *FSSource) Load(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(Table)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supportsFile(s.parser, entry.Name()) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		filePath := filepath.Join(s.dir, entry.Name())
		content, err := fs.ReadFile(s.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			continue
		}

		table, err := s.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("file '%s': %w", filePath, err))
		}
		mergeTable(all, table)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no valid catalog files found in directory '%s'", s.dir)
	}

	return all, nil
}

// mergeTable merges src into dst, locale by locale and domain by domain.
// Later files win on key collisions.
func mergeTable(dst, src Table) {
	for locale, domains := range src {
		if dst[locale] == nil {
			dst[locale] = make(map[string]map[string]string, len(domains))
		}
		for domain, messages := range domains {
			if dst[locale][domain] == nil {
				dst[locale][domain] = make(map[string]string, len(messages))
			}
			maps.Copy(dst[locale][domain], messages)
		}
	}
}

// supportsFile reports whether the parser can handle the file's extension.
func supportsFile(parser Parser, name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	return parser.SupportsFileExtension(ext[1:])
}

// readFileCtx reads a file in a goroutine so the caller can respect context
// cancellation while waiting on slow storage.
func readFileCtx(ctx context.Context, path string) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}
