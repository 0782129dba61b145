package catalog

import (
	argov1alpha1 "github.com/vexxhost/hyper-platform/apis/argoproj/v1alpha1"
	"github.com/vexxhost/hyper-platform/pkg/platform"
)

// CatalogConfigEnvironmentMeta is the deployment trigger of one environment
type CatalogConfigEnvironmentMeta struct {
	Environment       platform.Environment       `json:"environment"`
	DeploymentTrigger platform.DeploymentTrigger `json:"deploymentTrigger"`
}

// CatalogConfig is the catalog.yaml of a deployment catalog
type CatalogConfig struct {
	Name          string                         `json:"name"`
	CatalogName   string                         `json:"catalogName"`
	MainNamespace string                         `json:"mainNamespace"`
	ProjectName   string                         `json:"projectName"`
	Environments  []CatalogConfigEnvironmentMeta `json:"environments"`
}

// Trigger returns the deployment trigger configured for env
func (c *CatalogConfig) Trigger(env platform.Environment) (platform.DeploymentTrigger, bool) {
	for _, meta := range c.Environments {
		if meta.Environment == env {
			return meta.DeploymentTrigger, true
		}
	}
	return "", false
}

// AddonCatalogConfig is the config of an addon catalog
type AddonCatalogConfig struct {
	Name string `json:"name"`
}

// BootstrapCatalogConfig is the config of a bootstrap catalog
type BootstrapCatalogConfig struct {
	Name              string `json:"name"`
	CatalogName       string `json:"catalogName"`
	ArgocdApplication string `json:"argocdApplication"`
	ArgocdProject     string `json:"argocdProject"`
}

// GeneratorConfigs holds the classified config files of an ApplicationSet
type GeneratorConfigs struct {
	Items []ApplicationSetConfigResult `json:"items"`
}

// ApplicationSetSummary is a workload ApplicationSet with its config files
type ApplicationSetSummary struct {
	Name             string                       `json:"name"`
	ApplicationSet   *argov1alpha1.ApplicationSet `json:"applicationSet"`
	GeneratorConfigs GeneratorConfigs             `json:"generatorConfigs"`
}

// Active returns the results of active config files
func (s *ApplicationSetSummary) Active() []ApplicationSetConfigResult {
	var active []ApplicationSetConfigResult
	for _, item := range s.GeneratorConfigs.Items {
		if item.Active != nil && *item.Active {
			active = append(active, item)
		}
	}
	return active
}

// DeploymentCatalogResponse is a catalog with the summaries of its workloads
type DeploymentCatalogResponse struct {
	Config                         CatalogConfig           `json:"config"`
	CatalogApplicationSetSummaries []ApplicationSetSummary `json:"catalogApplicationSetSummaries"`
}

// CatalogBootstrapResponse is a bootstrap catalog with its Applications
type CatalogBootstrapResponse struct {
	Config              BootstrapCatalogConfig     `json:"config"`
	CatalogApplications []argov1alpha1.Application `json:"catalogApplications"`
}
