// pkg/registry/schema.go
package registry

// DocumentRegistry is the on-disk table mapping symbolic document keys to
// template files. The table is configuration data, not code: adding a new EDI
// document variant means adding an entry here, not a new branch anywhere.
type DocumentRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Documents   []Document `json:"documents"`
}

// Document describes one registered template document.
type Document struct {
	Key            string   `json:"key"`
	Path           string   `json:"path"`
	Description    string   `json:"description,omitempty"`
	TransactionSet string   `json:"transactionSet,omitempty"` // e.g. "204", "990", "214", "210"
	Direction      string   `json:"direction,omitempty"`      // "inbound" or "outbound"
	Format         string   `json:"format"`                   // "x12" or "json"
	TokenStyle     string   `json:"tokenStyle"`               // "brace" for {X}, "dollar" for ${X}
	Tags           []string `json:"tags,omitempty"`
}

// registrySchema validates the registry file shape before any entry is used.
const registrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "documents"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string"},
    "lastUpdated": {"type": "string"},
    "documents": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["key", "path", "format", "tokenStyle"],
        "additionalProperties": false,
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "path": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "transactionSet": {"type": "string"},
          "direction": {"type": "string", "enum": ["inbound", "outbound"]},
          "format": {"type": "string", "enum": ["x12", "json"]},
          "tokenStyle": {"type": "string", "enum": ["brace", "dollar"]},
          "tags": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`
