package platform

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// ProbeType is the mechanism a probe uses
type ProbeType string

const (
	ProbeTypeHTTP ProbeType = "http"
	ProbeTypeExec ProbeType = "exec"
)

// ProbeRole is the purpose of a probe
type ProbeRole string

const (
	ProbeRoleLiveness  ProbeRole = "liveness"
	ProbeRoleReadiness ProbeRole = "readiness"
)

// EnvironmentVariable is a plain environment variable for a container
type EnvironmentVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToEnvVar converts the variable into a Kubernetes EnvVar
func (e EnvironmentVariable) ToEnvVar() corev1.EnvVar {
	return corev1.EnvVar{Name: e.Name, Value: e.Value}
}

// Secret references a secret stored in Vault
type Secret struct {
	Name      string `json:"name"`
	SecretKey string `json:"secretKey"`
	VaultPath string `json:"vaultPath"`
}

// ContainerPortConfig exposes a container port through the service
type ContainerPortConfig struct {
	PortName    string `json:"portName"`
	PortNumber  int32  `json:"portNumber"`
	Protocol    string `json:"protocol"`
	ServicePort int32  `json:"servicePort"`
}

// ToContainerPort converts the port into a Kubernetes ContainerPort
func (p ContainerPortConfig) ToContainerPort() corev1.ContainerPort {
	return corev1.ContainerPort{
		Name:          p.PortName,
		ContainerPort: p.PortNumber,
		Protocol:      corev1.Protocol(strings.ToUpper(p.Protocol)),
	}
}

// ResourceRequest is a CPU and memory pair
type ResourceRequest struct {
	Memory string `json:"memory"`
	CPU    string `json:"cpu"`
}

// ToResourceList parses the request into a Kubernetes ResourceList
func (r ResourceRequest) ToResourceList() (corev1.ResourceList, error) {
	list := corev1.ResourceList{}

	if r.CPU != "" {
		q, err := resource.ParseQuantity(r.CPU)
		if err != nil {
			return nil, fmt.Errorf("invalid cpu quantity %q: %w", r.CPU, err)
		}
		list[corev1.ResourceCPU] = q
	}

	if r.Memory != "" {
		q, err := resource.ParseQuantity(r.Memory)
		if err != nil {
			return nil, fmt.Errorf("invalid memory quantity %q: %w", r.Memory, err)
		}
		list[corev1.ResourceMemory] = q
	}

	return list, nil
}

// ContainerResourceProperties holds resource requests and limits
type ContainerResourceProperties struct {
	Requests ResourceRequest `json:"requests"`
	Limits   ResourceRequest `json:"limits"`
}

// ToResourceRequirements converts the properties into Kubernetes resource requirements
func (r ContainerResourceProperties) ToResourceRequirements() (corev1.ResourceRequirements, error) {
	requests, err := r.Requests.ToResourceList()
	if err != nil {
		return corev1.ResourceRequirements{}, fmt.Errorf("requests: %w", err)
	}

	limits, err := r.Limits.ToResourceList()
	if err != nil {
		return corev1.ResourceRequirements{}, fmt.Errorf("limits: %w", err)
	}

	return corev1.ResourceRequirements{
		Requests: requests,
		Limits:   limits,
	}, nil
}

// ContainerProbeProperties configures a liveness or readiness probe
type ContainerProbeProperties struct {
	Enabled             *bool     `json:"enabled,omitempty"`
	Type                ProbeType `json:"type"`
	Path                string    `json:"path"`
	Port                int32     `json:"port"`
	Scheme              string    `json:"scheme"`
	InitialDelaySeconds int32     `json:"initialDelaySeconds"`
	TimeoutSeconds      int32     `json:"timeoutSeconds"`
	PeriodSeconds       int32     `json:"periodSeconds"`
	SuccessThreshold    int32     `json:"successThreshold"`
	FailureThreshold    int32     `json:"failureThreshold"`
}

// IsEnabled reports whether the probe is active. Probes without an explicit
// flag are enabled.
func (p ContainerProbeProperties) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// ToProbe converts the properties into a Kubernetes Probe. Disabled probes
// return nil.
func (p ContainerProbeProperties) ToProbe() (*corev1.Probe, error) {
	if !p.IsEnabled() {
		return nil, nil
	}

	probe := &corev1.Probe{
		InitialDelaySeconds: p.InitialDelaySeconds,
		TimeoutSeconds:      p.TimeoutSeconds,
		PeriodSeconds:       p.PeriodSeconds,
		SuccessThreshold:    p.SuccessThreshold,
		FailureThreshold:    p.FailureThreshold,
	}

	switch p.Type {
	case ProbeTypeHTTP:
		probe.HTTPGet = &corev1.HTTPGetAction{
			Path:   p.Path,
			Port:   intstr.FromInt32(p.Port),
			Scheme: corev1.URIScheme(strings.ToUpper(p.Scheme)),
		}
	case ProbeTypeExec:
		// exec probes carry the command line in path
		probe.Exec = &corev1.ExecAction{
			Command: strings.Fields(p.Path),
		}
	default:
		return nil, fmt.Errorf("unsupported probe type %q", p.Type)
	}

	return probe, nil
}

// ContainerHpaProperties configures horizontal pod autoscaling
type ContainerHpaProperties struct {
	Enabled     bool  `json:"enabled"`
	TargetCPU   int32 `json:"targetCpu"`
	MinReplicas int32 `json:"minReplicas"`
	MaxReplicas int32 `json:"maxReplicas"`
}

// ContainerStorageProperties configures the persistent volume of a stateful workload
type ContainerStorageProperties struct {
	Size         string `json:"size"`
	StorageClass string `json:"storageClass"`
	MountPath    string `json:"mountPath"`
	AccessMode   string `json:"accessMode"`
}

// SizeQuantity parses the requested volume size
func (s ContainerStorageProperties) SizeQuantity() (resource.Quantity, error) {
	return resource.ParseQuantity(s.Size)
}

// ContainerVersionsList lists the published versions of a container or chart
type ContainerVersionsList struct {
	Name     string `json:"name"`
	Versions struct {
		Items []string `json:"items"`
	} `json:"versions"`
}

// ValuesFileVariables are the inputs used to render a workload values file
type ValuesFileVariables struct {
	ServiceName        string `json:"serviceName"`
	Environment        string `json:"environment"`
	ContainerPath      string `json:"containerPath"`
	ServiceCatalogName string `json:"serviceCatalogName"`
	Namespace          string `json:"namespace"`
}

// ValuesFileStrategy renders a values file of type T for a new workload
type ValuesFileStrategy[T any] interface {
	GenerateValuesFile(variables ValuesFileVariables) T
}
