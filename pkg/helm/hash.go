package helm

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ConfigHash returns a hash of the values, excluding annotations and labels
func ConfigHash(values map[string]interface{}) (string, error) {
	cleanValues := make(map[string]interface{}, len(values))
	for k, v := range values {
		if k != "annotations" && k != "labels" {
			cleanValues[k] = v
		}
	}

	// json.Marshal sorts map keys
	valuesBytes, err := json.Marshal(cleanValues)
	if err != nil {
		return "", fmt.Errorf("failed to marshal values for hashing: %w", err)
	}

	return fmt.Sprintf("%x", sha256.Sum256(valuesBytes)), nil
}

// ConfigHash returns a hash of the chart coordinates, release identity and
// values of the release
func (w *WorkloadRelease) ConfigHash() (string, error) {
	doc := map[string]interface{}{}
	if w.Chart != nil {
		doc["chart"] = w.Chart
	}
	if w.Release != nil {
		values, err := ConfigHash(w.Release.Values)
		if err != nil {
			return "", err
		}
		doc["release"] = map[string]interface{}{
			"namespace": w.Release.Namespace,
			"name":      w.Release.Name,
			"values":    values,
		}
	}

	return ConfigHash(doc)
}
