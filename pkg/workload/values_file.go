package workload

import "github.com/vexxhost/hyper-platform/pkg/platform"

const defaultImageTag = "latest"

// BasicValuesFile renders the initial values file of a new basic container
// workload
type BasicValuesFile struct {
	Stripe Stripe
}

var _ platform.ValuesFileStrategy[*BasicContainerLoad] = BasicValuesFile{}

// GenerateValuesFile builds a single replica workload running the latest
// image of the container path
func (b BasicValuesFile) GenerateValuesFile(variables platform.ValuesFileVariables) *BasicContainerLoad {
	return &BasicContainerLoad{
		Metadata: Metadata{
			WorkloadType:   WorkloadTypeBasicContainerLoad,
			ServiceName:    variables.ServiceName,
			Environment:    platform.Environment(variables.Environment),
			Namespace:      variables.Namespace,
			ServiceCatalog: variables.ServiceCatalogName,
		},
		Stripe: b.Stripe,
		Container: Container{
			ContainerBase: ContainerBase{
				Replicas: 1,
				Image: Image{
					Repository: variables.ContainerPath,
					Tag:        defaultImageTag,
				},
				Resources: platform.ContainerResourceProperties{
					Requests: platform.ResourceRequest{CPU: "100m", Memory: "128Mi"},
					Limits:   platform.ResourceRequest{CPU: "500m", Memory: "512Mi"},
				},
			},
		},
	}
}
