package workload

import (
	"github.com/vexxhost/hyper-platform/pkg/platform"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var probeTypes = []platform.ProbeType{platform.ProbeTypeHTTP, platform.ProbeTypeExec}

// Validate checks a basic container load document
func (w *BasicContainerLoad) Validate() field.ErrorList {
	allErrs := w.Metadata.validate(w.GetWorkloadType())
	if w.Stripe == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("stripe"), ""))
	}
	allErrs = append(allErrs, w.Container.validate(field.NewPath("container"))...)
	allErrs = append(allErrs, w.Exposure.validate()...)
	return allErrs
}

// Validate checks a stateful container load document
func (w *StatefulContainerLoad) Validate() field.ErrorList {
	allErrs := w.Metadata.validate(w.GetWorkloadType())
	allErrs = append(allErrs, w.Container.validate(field.NewPath("container"))...)
	allErrs = append(allErrs, w.Exposure.validate()...)
	return allErrs
}

// Validate checks a rollout document, including its canary steps
func (w *BasicContainerRollout) Validate() field.ErrorList {
	allErrs := w.Metadata.validate(w.GetWorkloadType())
	allErrs = append(allErrs, w.Container.validate(field.NewPath("container"))...)
	allErrs = append(allErrs, w.Exposure.validate()...)
	allErrs = append(allErrs, w.Rollout.validate(field.NewPath("rollout"))...)
	return allErrs
}

// Validate checks an ML inference document
func (w *MLInferenceLoad) Validate() field.ErrorList {
	allErrs := w.Metadata.validate(w.GetWorkloadType())

	modelPath := field.NewPath("model")
	if w.Model.ID == "" {
		allErrs = append(allErrs, field.Required(modelPath.Child("id"), ""))
	}
	if w.Model.Revision == "" {
		allErrs = append(allErrs, field.Required(modelPath.Child("revision"), ""))
	}

	if w.Inference != nil {
		inferencePath := field.NewPath("inference")
		if w.Inference.MaxInputLength != nil && *w.Inference.MaxInputLength < 1 {
			allErrs = append(allErrs, field.Invalid(inferencePath.Child("maxInputLength"), *w.Inference.MaxInputLength, "must be positive"))
		}
		if w.Inference.MaxTotalTokens != nil && *w.Inference.MaxTotalTokens < 1 {
			allErrs = append(allErrs, field.Invalid(inferencePath.Child("maxTotalTokens"), *w.Inference.MaxTotalTokens, "must be positive"))
		}
		if w.Inference.MaxInputLength != nil && w.Inference.MaxTotalTokens != nil &&
			*w.Inference.MaxInputLength >= *w.Inference.MaxTotalTokens {
			allErrs = append(allErrs, field.Invalid(inferencePath.Child("maxInputLength"), *w.Inference.MaxInputLength, "must be lower than maxTotalTokens"))
		}
	}

	allErrs = append(allErrs, w.GPU.validate(field.NewPath("gpu"))...)

	containerPath := field.NewPath("container")
	allErrs = append(allErrs, w.Container.ContainerBase.validate(containerPath)...)
	allErrs = append(allErrs, w.Container.ContainerSecrets.validate(containerPath)...)
	allErrs = append(allErrs, w.Exposure.validate()...)
	return allErrs
}

// Validate checks an Ollama inference document
func (w *OllamaInferenceLoad) Validate() field.ErrorList {
	allErrs := w.Metadata.validate(w.GetWorkloadType())
	allErrs = append(allErrs, w.GPU.validate(field.NewPath("gpu"))...)
	allErrs = append(allErrs, w.Container.validate(field.NewPath("container"))...)
	allErrs = append(allErrs, w.Exposure.validate()...)
	return allErrs
}

func (m Metadata) validate(workloadType WorkloadType) field.ErrorList {
	var allErrs field.ErrorList

	if m.WorkloadType != workloadType {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("workloadType"), m.WorkloadType, []WorkloadType{workloadType}))
	}
	if m.ServiceName == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("serviceName"), ""))
	}
	if !m.Environment.IsValid() {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("environment"), m.Environment, platform.Environments))
	}
	if m.ServiceCatalog == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("serviceCatalog"), ""))
	}
	if m.RevisionHistoryLimit != nil && *m.RevisionHistoryLimit < 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("revisionHistoryLimit"), *m.RevisionHistoryLimit, "must not be negative"))
	}

	return allErrs
}

func (e Exposure) validate() field.ErrorList {
	var allErrs field.ErrorList

	if e.Ingress != nil && e.Ingress.Enabled && e.Ingress.Host == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("ingress", "host"), "required when ingress is enabled"))
	}
	if e.Service != nil && e.Service.Port != nil {
		allErrs = append(allErrs, validatePort(field.NewPath("service", "port"), *e.Service.Port)...)
	}

	return allErrs
}

func (g GPU) validate(path *field.Path) field.ErrorList {
	if g.Count < 1 {
		return field.ErrorList{field.Invalid(path.Child("count"), g.Count, "at least one GPU is required")}
	}
	return nil
}

func (c ContainerBase) validate(path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	if c.Replicas < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("replicas"), c.Replicas, "must not be negative"))
	}
	if c.Image.Repository == "" {
		allErrs = append(allErrs, field.Required(path.Child("image", "repository"), ""))
	}
	if c.Image.Tag == "" {
		allErrs = append(allErrs, field.Required(path.Child("image", "tag"), ""))
	}

	for i, port := range c.ContainerPorts {
		portPath := path.Child("containerPorts").Index(i)
		if port.PortName == "" {
			allErrs = append(allErrs, field.Required(portPath.Child("portName"), ""))
		}
		allErrs = append(allErrs, validatePort(portPath.Child("portNumber"), port.PortNumber)...)
		if port.ServicePort != 0 {
			allErrs = append(allErrs, validatePort(portPath.Child("servicePort"), port.ServicePort)...)
		}
	}

	if c.LivenessProbe != nil {
		allErrs = append(allErrs, validateProbe(path.Child("livenessProbe"), *c.LivenessProbe)...)
	}
	if c.ReadinessProbe != nil {
		allErrs = append(allErrs, validateProbe(path.Child("readinessProbe"), *c.ReadinessProbe)...)
	}

	resourcesPath := path.Child("resources")
	if _, err := c.Resources.Requests.ToResourceList(); err != nil {
		allErrs = append(allErrs, field.Invalid(resourcesPath.Child("requests"), c.Resources.Requests, err.Error()))
	}
	if _, err := c.Resources.Limits.ToResourceList(); err != nil {
		allErrs = append(allErrs, field.Invalid(resourcesPath.Child("limits"), c.Resources.Limits, err.Error()))
	}

	for i, env := range c.Environment {
		if env.Name == "" {
			allErrs = append(allErrs, field.Required(path.Child("environment").Index(i).Child("name"), ""))
		}
	}

	return allErrs
}

func (s ContainerSecrets) validate(path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	if s.SecretStore != nil && s.SecretStore.Name == "" {
		allErrs = append(allErrs, field.Required(path.Child("secretStore", "name"), ""))
	}
	for i, secret := range s.Secrets {
		secretPath := path.Child("secrets").Index(i)
		if secret.Name == "" {
			allErrs = append(allErrs, field.Required(secretPath.Child("name"), ""))
		}
		if secret.VaultPath == "" {
			allErrs = append(allErrs, field.Required(secretPath.Child("vaultPath"), ""))
		}
	}

	return allErrs
}

func (c Container) validate(path *field.Path) field.ErrorList {
	allErrs := c.ContainerBase.validate(path)
	allErrs = append(allErrs, c.ContainerSecrets.validate(path)...)

	if c.Vault != nil && c.Vault.Key == "" {
		allErrs = append(allErrs, field.Required(path.Child("vault", "key"), ""))
	}

	if c.HPA != nil && c.HPA.Enabled {
		hpaPath := path.Child("hpa")
		if c.HPA.MinReplicas < 1 {
			allErrs = append(allErrs, field.Invalid(hpaPath.Child("minReplicas"), c.HPA.MinReplicas, "must be at least 1"))
		}
		if c.HPA.MaxReplicas < c.HPA.MinReplicas {
			allErrs = append(allErrs, field.Invalid(hpaPath.Child("maxReplicas"), c.HPA.MaxReplicas, "must not be lower than minReplicas"))
		}
		if c.HPA.TargetCPU < 1 || c.HPA.TargetCPU > 100 {
			allErrs = append(allErrs, field.Invalid(hpaPath.Child("targetCpu"), c.HPA.TargetCPU, "must be between 1 and 100"))
		}
	}

	return allErrs
}

func (c StatefulContainer) validate(path *field.Path) field.ErrorList {
	allErrs := c.Container.validate(path)

	storagePath := path.Child("storage")
	if _, err := c.Storage.SizeQuantity(); err != nil {
		allErrs = append(allErrs, field.Invalid(storagePath.Child("size"), c.Storage.Size, err.Error()))
	}
	if c.Storage.MountPath == "" {
		allErrs = append(allErrs, field.Required(storagePath.Child("mountPath"), ""))
	}

	return allErrs
}

func (r Rollout) validate(path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	canaryPath := path.Child("strategy", "canary")
	canary := r.Strategy.Canary
	if canary.MaxSurge < 0 {
		allErrs = append(allErrs, field.Invalid(canaryPath.Child("maxSurge"), canary.MaxSurge, "must not be negative"))
	}
	if canary.MaxUnavailable < 0 {
		allErrs = append(allErrs, field.Invalid(canaryPath.Child("maxUnavailable"), canary.MaxUnavailable, "must not be negative"))
	}

	for i, step := range canary.Steps {
		stepPath := canaryPath.Child("steps").Index(i)
		switch step.Kind() {
		case platform.RolloutStepSetWeight:
			if *step.SetWeight < 0 || *step.SetWeight > 100 {
				allErrs = append(allErrs, field.Invalid(stepPath.Child("setWeight"), *step.SetWeight, "must be between 0 and 100"))
			}
		case platform.RolloutStepAnalysis:
			if len(step.Analysis.Templates) == 0 {
				allErrs = append(allErrs, field.Required(stepPath.Child("analysis", "templates"), ""))
			}
		case platform.RolloutStepPause:
		default:
			allErrs = append(allErrs, field.Invalid(stepPath, step, "exactly one of setWeight, pause or analysis must be set"))
		}
	}

	return allErrs
}

func validatePort(path *field.Path, port int32) field.ErrorList {
	if port < 1 || port > 65535 {
		return field.ErrorList{field.Invalid(path, port, "must be between 1 and 65535")}
	}
	return nil
}

func validateProbe(path *field.Path, probe platform.ContainerProbeProperties) field.ErrorList {
	if !probe.IsEnabled() {
		return nil
	}

	var allErrs field.ErrorList
	switch probe.Type {
	case platform.ProbeTypeHTTP:
		if probe.Path == "" {
			allErrs = append(allErrs, field.Required(path.Child("path"), ""))
		}
		allErrs = append(allErrs, validatePort(path.Child("port"), probe.Port)...)
	case platform.ProbeTypeExec:
		if probe.Path == "" {
			allErrs = append(allErrs, field.Required(path.Child("path"), "command is required for exec probes"))
		}
	default:
		allErrs = append(allErrs, field.NotSupported(path.Child("type"), probe.Type, probeTypes))
	}

	return allErrs
}
