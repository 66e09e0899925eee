// internal/testdata/resolver.go

// Package testdata resolves symbolic document keys to template text and test
// case identifiers to fixture rows. Both lookups read storage fresh on every
// call: templates are edited between runs and the suite must never serve a
// stale copy.
package testdata

import (
	"os"
	"path/filepath"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
	"tms-edi-suite/pkg/registry"
)

// Resolver maps symbolic document keys to template documents through the
// registry table.
type Resolver struct {
	registry      *registry.DocumentRegistry
	documentsRoot string
	logger        logger.Logger
}

func NewResolver(reg *registry.DocumentRegistry, documentsRoot string, log logger.Logger) *Resolver {
	return &Resolver{
		registry:      reg,
		documentsRoot: documentsRoot,
		logger:        log.With(map[string]interface{}{"component": "testdata"}),
	}
}

// GetDocument returns the verbatim text of the document registered under key.
// The file is read fresh on every call; callers own the returned copy.
func (r *Resolver) GetDocument(key string) (string, error) {
	doc := r.registry.Lookup(key)
	if doc == nil {
		return "", errors.NewUnknownDocumentKeyError(key)
	}

	path := filepath.Join(r.documentsRoot, filepath.FromSlash(doc.Path))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewDocumentUnavailableError(key, path, err)
	}

	r.logger.Debug("document resolved", map[string]interface{}{
		"documentKey": key,
		"path":        doc.Path,
		"bytes":       len(data),
	})
	return string(data), nil
}

// Meta returns the registry entry for key, used by callers that need the token
// style or format alongside the text.
func (r *Resolver) Meta(key string) (*registry.Document, error) {
	doc := r.registry.Lookup(key)
	if doc == nil {
		return nil, errors.NewUnknownDocumentKeyError(key)
	}
	return doc, nil
}

// Keys returns every registered document key.
func (r *Resolver) Keys() []string {
	return r.registry.Keys()
}
