// pkg/registry/audit.go
package registry

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// AuditResult lists disagreements between the registry and the documents
// directory on disk.
type AuditResult struct {
	Unregistered []string // template files on disk with no registry entry
	Missing      []string // registry entries whose file does not exist
}

// Clean reports whether the registry and documents directory agree.
func (a AuditResult) Clean() bool {
	return len(a.Unregistered) == 0 && len(a.Missing) == 0
}

// Audit compares the registry against the documents directory. Registry paths
// are interpreted relative to documentsRoot.
func Audit(reg *DocumentRegistry, documentsRoot string) (AuditResult, error) {
	var result AuditResult

	registered := make(map[string]bool, len(reg.Documents))
	for _, d := range reg.Documents {
		registered[filepath.ToSlash(d.Path)] = true
		if _, err := os.Stat(filepath.Join(documentsRoot, filepath.FromSlash(d.Path))); err != nil {
			result.Missing = append(result.Missing, d.Path)
		}
	}

	fsys := os.DirFS(documentsRoot)
	matches, err := doublestar.Glob(fsys, "**/*.{edi,json,txt}")
	if err != nil {
		return result, err
	}
	for _, m := range matches {
		if !registered[m] {
			result.Unregistered = append(result.Unregistered, m)
		}
	}

	sort.Strings(result.Unregistered)
	sort.Strings(result.Missing)
	return result, nil
}
