package workload

import "fmt"

// WorkloadType is the discriminant carried by every workload values document
// in its workloadType field
type WorkloadType string

const (
	WorkloadTypeBasicContainerLoad    WorkloadType = "BASIC_CONTAINER_LOAD"
	WorkloadTypeStatefulContainerLoad WorkloadType = "STATEFUL_CONTAINER_LOAD"
	WorkloadTypeBasicContainerRollout WorkloadType = "BASIC_CONTAINER_ROLLOUT"
	WorkloadTypeMLInferenceLoad       WorkloadType = "ML_INFERENCE_LOAD"
	WorkloadTypeOllamaInferenceLoad   WorkloadType = "OLLAMA_INFERENCE_LOAD"
)

// WorkloadTypes lists every supported workload type
var WorkloadTypes = []WorkloadType{
	WorkloadTypeBasicContainerLoad,
	WorkloadTypeStatefulContainerLoad,
	WorkloadTypeBasicContainerRollout,
	WorkloadTypeMLInferenceLoad,
	WorkloadTypeOllamaInferenceLoad,
}

// IsValid reports whether the workload type is supported
func (w WorkloadType) IsValid() bool {
	for _, t := range WorkloadTypes {
		if t == w {
			return true
		}
	}
	return false
}

// ParseWorkloadType converts a string into a supported WorkloadType
func ParseWorkloadType(s string) (WorkloadType, error) {
	w := WorkloadType(s)
	if !w.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWorkloadType, s)
	}
	return w, nil
}
