package catalog

import (
	"encoding/json"

	argov1alpha1 "github.com/vexxhost/hyper-platform/apis/argoproj/v1alpha1"
	"github.com/vexxhost/hyper-platform/apis/kustomize/v1beta1"
	"github.com/vexxhost/hyper-platform/pkg/github"
	"github.com/vexxhost/hyper-platform/pkg/platform"
	"github.com/vexxhost/hyper-platform/pkg/workload"
)

// CatalogConfigRequestPathParams identifies a catalog
type CatalogConfigRequestPathParams struct {
	CatalogName string `json:"catalogName"`
}

// WorkloadConfigurationDataProps identifies a workload in one environment
type WorkloadConfigurationDataProps struct {
	Environment  platform.Environment `json:"environment"`
	WorkloadName string               `json:"workloadName"`
	CatalogName  string               `json:"catalogName"`
}

// WorkloadConfigurationUpdateRequestPathParams identifies the workload an
// update request targets
type WorkloadConfigurationUpdateRequestPathParams struct {
	CatalogName  string               `json:"catalogName"`
	Environment  platform.Environment `json:"environment"`
	WorkloadName string               `json:"workloadName"`
}

// WorkloadConfigurationUpdateRequestPayload carries the current and the
// updated values of a workload
type WorkloadConfigurationUpdateRequestPayload struct {
	CatalogName   string               `json:"catalogName"`
	WorkloadName  string               `json:"workloadName"`
	Environment   platform.Environment `json:"environment"`
	Values        workload.Values      `json:"values"`
	UpdatedValues workload.Values      `json:"updatedValues"`
}

// WorkloadUpdateRequest is an update to write back to the catalog repository
type WorkloadUpdateRequest struct {
	CatalogName   string               `json:"catalogName"`
	Environment   platform.Environment `json:"environment"`
	WorkloadName  string               `json:"workloadName"`
	UpdatedValues json.RawMessage      `json:"updatedValues"`
	SHA           string               `json:"sha"`
	UpdateType    github.UpdateType    `json:"updateType"`
}

// WorkloadConfigurationUpdateResponse is the result of an update request
type WorkloadConfigurationUpdateResponse = platform.SimpleHTTPResponseMessage

// WorkloadConfigurationDataPayload is everything needed to edit the values
// of a workload in one environment
type WorkloadConfigurationDataPayload struct {
	CatalogName    string                         `json:"catalogName"`
	Environment    platform.Environment           `json:"environment"`
	WorkloadName   string                         `json:"workloadName"`
	CatalogConfig  CatalogConfig                  `json:"catalogConfig"`
	ValuesSchema   json.RawMessage                `json:"valuesSchema"`
	Values         workload.Values                `json:"values"`
	Versions       platform.ContainerVersionsList `json:"versions"`
	ValueFiles     []map[string]any               `json:"valueFiles,omitempty"`
	ApplicationSet argov1alpha1.ApplicationSet    `json:"applicationSet"`
	Kustomization  v1beta1.CatalogKustomization   `json:"kustomization"`
}

// WorkloadConfigurationDataUpdate is a data payload with updated values
type WorkloadConfigurationDataUpdate struct {
	WorkloadConfigurationDataPayload

	UpdatedValues workload.Values `json:"updatedValues"`
}

// EnvironmentSecretDataProps identifies the secrets of an environment
type EnvironmentSecretDataProps struct {
	Environment platform.Environment `json:"environment"`
}
