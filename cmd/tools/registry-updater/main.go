// cmd/tools/registry-updater/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"tms-edi-suite/pkg/registry"
)

var registryPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	auditCmd := flag.NewFlagSet("audit", flag.ExitOnError)

	// Add command flags
	keyAdd := addCmd.String("key", "", "Document key (e.g., edi204RawData)")
	path := addCmd.String("path", "", "Template path relative to the documents root (e.g., edi204/raw-load-tender.edi)")
	description := addCmd.String("description", "", "Description")
	transactionSet := addCmd.String("transactionSet", "", "X12 transaction set (e.g., 204)")
	direction := addCmd.String("direction", "inbound", "Direction (inbound or outbound)")
	format := addCmd.String("format", "x12", "Payload format (x12 or json)")
	tokenStyle := addCmd.String("tokenStyle", "brace", "Placeholder style (brace for {X}, dollar for ${X})")
	addCmd.StringVar(&registryPath, "registry", "configs/document-registry.json", "Path to registry file")

	// Update command flags
	keyUpdate := updateCmd.String("key", "", "Document key to update")
	field := updateCmd.String("field", "", "Field to update (path, description, transactionSet, direction, format, tokenStyle)")
	value := updateCmd.String("value", "", "New value for the field")
	updateCmd.StringVar(&registryPath, "registry", "configs/document-registry.json", "Path to registry file")

	// Validate command flags
	validateCmd.StringVar(&registryPath, "registry", "configs/document-registry.json", "Path to registry file")

	// Audit command flags
	documentsRoot := auditCmd.String("documents", "testdata/documents", "Documents root to audit against")
	auditCmd.StringVar(&registryPath, "registry", "configs/document-registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *keyAdd == "" || *path == "" {
			fmt.Println("Error: key and path are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		doc := registry.Document{
			Key:            *keyAdd,
			Path:           *path,
			Description:    *description,
			TransactionSet: *transactionSet,
			Direction:      *direction,
			Format:         *format,
			TokenStyle:     *tokenStyle,
		}
		if err := addDocument(&doc); err != nil {
			fmt.Printf("Error adding document: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added document: %s\n", *keyAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *keyUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: key, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateDocument(*keyUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating document: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated document %s, field %s to %s\n", *keyUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateRegistry(); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}

	case "audit":
		auditCmd.Parse(os.Args[2:])
		if err := auditRegistry(*documentsRoot); err != nil {
			fmt.Printf("Registry audit failed: %v\n", err)
			os.Exit(1)
		}

	case "help":
		fallthrough
	default:
		help()
	}
}

func addDocument(doc *registry.Document) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		// If file doesn't exist, create new registry
		if errors.Is(err, os.ErrNotExist) {
			reg = &registry.DocumentRegistry{
				Version:     "1.0.0",
				LastUpdated: time.Now().Format(time.RFC3339),
				Documents:   []registry.Document{},
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}

	if reg.Lookup(doc.Key) != nil {
		return fmt.Errorf("document with key %s already exists", doc.Key)
	}

	reg.Documents = append(reg.Documents, *doc)
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	return registry.Save(registryPath, reg)
}

func updateDocument(key, field, value string) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	found := false
	for i := range reg.Documents {
		if reg.Documents[i].Key == key {
			found = true
			switch field {
			case "path":
				reg.Documents[i].Path = value
			case "description":
				reg.Documents[i].Description = value
			case "transactionSet":
				reg.Documents[i].TransactionSet = value
			case "direction":
				reg.Documents[i].Direction = value
			case "format":
				reg.Documents[i].Format = value
			case "tokenStyle":
				reg.Documents[i].TokenStyle = value
			default:
				return fmt.Errorf("unknown field: %s", field)
			}
			break
		}
	}

	if !found {
		return fmt.Errorf("document with key %s not found", key)
	}

	reg.LastUpdated = time.Now().Format(time.RFC3339)
	return registry.Save(registryPath, reg)
}

func validateRegistry() error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Documents) == 0 {
		return fmt.Errorf("registry contains no documents")
	}

	fmt.Printf("Registry validation passed. Found %d documents.\n", len(reg.Documents))
	return nil
}

func auditRegistry(documentsRoot string) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	result, err := registry.Audit(reg, documentsRoot)
	if err != nil {
		return fmt.Errorf("failed to audit registry: %w", err)
	}

	for _, path := range result.Missing {
		fmt.Printf("missing template: %s (registered but not on disk)\n", path)
	}
	for _, path := range result.Unregistered {
		fmt.Printf("unregistered template: %s (on disk but not in registry)\n", path)
	}

	if !result.Clean() {
		return fmt.Errorf("%d missing, %d unregistered", len(result.Missing), len(result.Unregistered))
	}

	fmt.Println("Registry audit passed. Every template is registered and present.")
	return nil
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a new document to the registry
  update   Update an existing document's field
  validate Validate the registry file
  audit    Cross-check the registry against the documents on disk
  help     Show this help message

Examples:
  registry-updater add -key edi204RawData -path edi204/raw-load-tender.edi -transactionSet 204 -description "Raw EDI 204 load tender"
  registry-updater update -key edi204RawData -field tokenStyle -value dollar
  registry-updater validate -registry configs/document-registry.json
  registry-updater audit -registry configs/document-registry.json -documents testdata/documents

Use 'registry-updater <command> -h' for more information about a command.
`)
}
