package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	jsonpatch "github.com/evanphx/json-patch"
	"sigs.k8s.io/yaml"
)

// PatchOp is a JSON Patch operation supported in catalog patch files
type PatchOp string

const (
	PatchOpReplace PatchOp = "replace"
	PatchOpAdd     PatchOp = "add"
)

// CatalogPatchItem is one JSON Patch operation
type CatalogPatchItem struct {
	Op    PatchOp `json:"op"`
	Path  string  `json:"path"`
	Value any     `json:"value"`
}

// PatchFile is a set of patches against one catalog file
type PatchFile struct {
	Path    string             `json:"path"`
	Patches []CatalogPatchItem `json:"patches"`
}

// Apply patches the contents of the file. YAML files are converted to JSON
// for patching and back to YAML afterwards.
func (p PatchFile) Apply(doc []byte) ([]byte, error) {
	for i, item := range p.Patches {
		if item.Op != PatchOpReplace && item.Op != PatchOpAdd {
			return nil, fmt.Errorf("patch %d of %s: unsupported op %q", i, p.Path, item.Op)
		}
	}

	ops, err := json.Marshal(p.Patches)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patches for %s: %w", p.Path, err)
	}

	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("failed to decode patches for %s: %w", p.Path, err)
	}

	isYAML := p.isYAML()
	if isYAML {
		doc, err = yaml.YAMLToJSON(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s to json: %w", p.Path, err)
		}
	}

	patched, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to patch %s: %w", p.Path, err)
	}

	if isYAML {
		return yaml.JSONToYAML(patched)
	}
	return patched, nil
}

func (p PatchFile) isYAML() bool {
	switch filepath.Ext(p.Path) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
