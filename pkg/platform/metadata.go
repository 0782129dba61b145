package platform

// DeploymentDomain names a platform deployment domain
type DeploymentDomain string

const DeploymentDomainHyperPlatform DeploymentDomain = "hyper-platform"

// PlatformEnvironment wraps an environment served by a cluster
type PlatformEnvironment struct {
	Environment Environment `json:"environment"`
}

// ClusterMetadata describes a cluster registered with the platform
type ClusterMetadata struct {
	Name         string                `json:"name"`
	Environments []PlatformEnvironment `json:"environments"`
	Address      string                `json:"address"`
}

// Serves reports whether the cluster hosts the given environment
func (c ClusterMetadata) Serves(env Environment) bool {
	for _, e := range c.Environments {
		if e.Environment == env {
			return true
		}
	}
	return false
}

// PlatformSystem describes a system (a group of workloads) on the platform
type PlatformSystem struct {
	Name          string        `json:"name"`
	SystemGrub    string        `json:"systemGrub"`
	ContainerGrub string        `json:"containerGrub"`
	Domain        string        `json:"domain"`
	Catalog       string        `json:"catalog"`
	MainNamespace string        `json:"mainNamespace"`
	Environments  []Environment `json:"environments"`
}

// PlatformMetadata is the registry of systems, clusters and environment sets
type PlatformMetadata struct {
	Systems        []PlatformSystem  `json:"systems"`
	Clusters       []ClusterMetadata `json:"clusters"`
	EnvironmentMap EnvironmentMap    `json:"environmentMap"`
}

// PlatformMetadataResponse is returned by the platform metadata endpoint
type PlatformMetadataResponse = PlatformMetadata

// System returns the named system
func (m *PlatformMetadata) System(name string) (*PlatformSystem, bool) {
	for i := range m.Systems {
		if m.Systems[i].Name == name {
			return &m.Systems[i], true
		}
	}
	return nil, false
}

// ClustersFor returns the clusters serving the given environment
func (m *PlatformMetadata) ClustersFor(env Environment) []ClusterMetadata {
	var clusters []ClusterMetadata
	for _, c := range m.Clusters {
		if c.Serves(env) {
			clusters = append(clusters, c)
		}
	}
	return clusters
}
