package workload

import (
	"github.com/vexxhost/hyper-platform/pkg/platform"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Schema is the values document of one workload chart. The set of
// implementations is closed; use Decode to obtain one from raw values.
type Schema interface {
	// GetWorkloadType returns the discriminant of the variant
	GetWorkloadType() WorkloadType

	// Validate checks the document against the rules of its variant
	Validate() field.ErrorList

	schema()
}

// Stripe is the deployment stripe a basic workload is placed on
type Stripe string

// Metadata holds the fields shared by every workload variant
type Metadata struct {
	WorkloadType         WorkloadType         `json:"workloadType"`
	ServiceName          string               `json:"serviceName"`
	Environment          platform.Environment `json:"environment"`
	Namespace            string               `json:"namespace,omitempty"`
	ServiceCatalog       string               `json:"serviceCatalog"`
	ServiceAccount       string               `json:"serviceAccount,omitempty"`
	RevisionHistoryLimit *int32               `json:"revisionHistoryLimit,omitempty"`
}

// Image is a container image reference
type Image struct {
	Repository string `json:"repository"`
	Tag        string `json:"tag"`
}

// VaultRef points at a Vault key holding container secrets
type VaultRef struct {
	Key string `json:"key"`
}

// SecretStoreRef names the external secret store used by a container
type SecretStoreRef struct {
	Name string `json:"name"`
}

// Monitoring toggles the basic monitoring resources of a chart
type Monitoring struct {
	Enabled bool `json:"enabled"`
}

// Ingress exposes the workload on a host name
type Ingress struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
}

// Service configures the Kubernetes service in front of the workload
type Service struct {
	Port *int32 `json:"port,omitempty"`
}

// Exposure holds the ingress and service fields shared by every variant
type Exposure struct {
	Ingress      *Ingress `json:"ingress,omitempty"`
	NameOverride string   `json:"nameOverride,omitempty"`
	Service      *Service `json:"service,omitempty"`
}

// GPU requests GPUs for inference workloads
type GPU struct {
	Count int32 `json:"count"`
}

// ContainerBase is the minimal container section, as used by Ollama workloads
type ContainerBase struct {
	Replicas       int32                                `json:"replicas"`
	Image          Image                                `json:"image"`
	ContainerPorts []platform.ContainerPortConfig       `json:"containerPorts,omitempty"`
	LivenessProbe  *platform.ContainerProbeProperties   `json:"livenessProbe,omitempty"`
	ReadinessProbe *platform.ContainerProbeProperties   `json:"readinessProbe,omitempty"`
	Resources      platform.ContainerResourceProperties `json:"resources"`
	Environment    []platform.EnvironmentVariable       `json:"environment,omitempty"`
}

// ContainerSecrets holds the secret delivery fields of a container
type ContainerSecrets struct {
	SecretStore           *SecretStoreRef   `json:"secretStore,omitempty"`
	SecretRefreshInterval string            `json:"secretRefreshInterval,omitempty"`
	Secrets               []platform.Secret `json:"secrets,omitempty"`
}

// InferenceContainer is the container section of ML inference workloads
type InferenceContainer struct {
	ContainerBase
	ContainerSecrets
}

// Container is the container section of basic and rollout workloads
type Container struct {
	ContainerBase
	ContainerSecrets
	Vault *VaultRef                        `json:"vault,omitempty"`
	HPA   *platform.ContainerHpaProperties `json:"hpa,omitempty"`
}

// StatefulContainer is a Container with a persistent volume
type StatefulContainer struct {
	Container
	Storage platform.ContainerStorageProperties `json:"storage"`
}

// BasicContainerLoad is a stateless deployment
type BasicContainerLoad struct {
	Metadata
	Stripe          Stripe      `json:"stripe"`
	BasicMonitoring *Monitoring `json:"basicMonitoring,omitempty"`
	Container       Container   `json:"container"`
	Exposure
}

// StatefulContainerLoad is a stateful set with persistent storage
type StatefulContainerLoad struct {
	Metadata
	BasicMonitoring *Monitoring       `json:"basicMonitoring,omitempty"`
	Container       StatefulContainer `json:"container"`
	Exposure
}

// Rollout is the canary section of a BasicContainerRollout
type Rollout struct {
	Analysis *platform.AnalysisTemplateConfig `json:"analysis,omitempty"`
	Strategy platform.RolloutStrategy         `json:"strategy"`
}

// BasicContainerRollout is a stateless workload released through Argo
// Rollouts canary steps
type BasicContainerRollout struct {
	Metadata
	BasicMonitoring *Monitoring `json:"basicMonitoring,omitempty"`
	Container       Container   `json:"container"`
	Exposure
	Rollout Rollout `json:"rollout"`
}

// Model identifies the model served by an ML inference workload
type Model struct {
	ID       string `json:"id"`
	Revision string `json:"revision"`
}

// Inference bounds the token limits of an inference server
type Inference struct {
	MaxInputLength *int32 `json:"maxInputLength,omitempty"`
	MaxTotalTokens *int32 `json:"maxTotalTokens,omitempty"`
}

// MLInferenceLoad serves a model through a text generation inference server
type MLInferenceLoad struct {
	Metadata
	Model     Model              `json:"model"`
	Inference *Inference         `json:"inference,omitempty"`
	GPU       GPU                `json:"gpu"`
	Container InferenceContainer `json:"container"`
	Exposure
}

// OllamaInferenceLoad serves models through Ollama
type OllamaInferenceLoad struct {
	Metadata
	GPU       GPU           `json:"gpu"`
	Container ContainerBase `json:"container"`
	Exposure
}

func (*BasicContainerLoad) GetWorkloadType() WorkloadType { return WorkloadTypeBasicContainerLoad }

func (*StatefulContainerLoad) GetWorkloadType() WorkloadType {
	return WorkloadTypeStatefulContainerLoad
}

func (*BasicContainerRollout) GetWorkloadType() WorkloadType {
	return WorkloadTypeBasicContainerRollout
}

func (*MLInferenceLoad) GetWorkloadType() WorkloadType { return WorkloadTypeMLInferenceLoad }

func (*OllamaInferenceLoad) GetWorkloadType() WorkloadType { return WorkloadTypeOllamaInferenceLoad }

func (*BasicContainerLoad) schema() {}
func (*StatefulContainerLoad) schema() {}
func (*BasicContainerRollout) schema() {}
func (*MLInferenceLoad) schema() {}
func (*OllamaInferenceLoad) schema() {}

// IsBasicContainerLoadVariant reports whether s is one of the variants built
// on the basic container chart: basic, stateful or rollout
func IsBasicContainerLoadVariant(s Schema) bool {
	switch s.(type) {
	case *BasicContainerLoad, *StatefulContainerLoad, *BasicContainerRollout:
		return true
	default:
		return false
	}
}
