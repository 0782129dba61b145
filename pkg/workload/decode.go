package workload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"
)

var (
	// ErrMissingWorkloadType is returned when a document has no workloadType
	ErrMissingWorkloadType = errors.New("missing workloadType")

	// ErrUnknownWorkloadType is returned for an unsupported workloadType
	ErrUnknownWorkloadType = errors.New("unknown workloadType")
)

var defaultRegistry = DefaultRegistry()

type discriminant struct {
	WorkloadType WorkloadType `json:"workloadType"`
}

// Decode reads a JSON or YAML values document into the variant named by its
// workloadType. Fields that do not belong to that variant are rejected.
func Decode(data []byte) (Schema, error) {
	return defaultRegistry.Decode(data)
}

// Decode reads a JSON or YAML values document using the variants of the
// registry
func (r *Registry) Decode(data []byte) (Schema, error) {
	var d discriminant
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to read workloadType: %w", err)
	}

	if d.WorkloadType == "" {
		return nil, ErrMissingWorkloadType
	}

	schema, err := r.New(d.WorkloadType)
	if err != nil {
		return nil, err
	}

	if err := yaml.UnmarshalStrict(data, schema); err != nil {
		return nil, fmt.Errorf("invalid %s values: %w", d.WorkloadType, err)
	}

	return schema, nil
}

// Values holds any workload document inside a larger JSON payload
type Values struct {
	Schema Schema
}

// MarshalJSON encodes the wrapped document, or null when empty
func (v Values) MarshalJSON() ([]byte, error) {
	if v.Schema == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v.Schema)
}

// UnmarshalJSON decodes the document into its variant
func (v *Values) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.Schema = nil
		return nil
	}

	schema, err := Decode(data)
	if err != nil {
		return err
	}

	v.Schema = schema
	return nil
}
