// Copyright 2025 VEXXHOST, Inc.
// SPDX-License-Identifier: Apache-2.0

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// GeneratorPath is a file or directory matched by a git generator
type GeneratorPath struct {
	Path string `json:"path"`
}

// GitGenerator generates parameters from files or directories of a repository
type GitGenerator struct {
	// RepoURL is the repository to read
	RepoURL string `json:"repoURL"`

	// Revision is the branch, tag or commit to read
	Revision string `json:"revision"`

	// Files are the config files whose contents become parameters
	Files []GeneratorPath `json:"files,omitempty"`

	// Directories are the directories whose paths become parameters
	Directories []GeneratorPath `json:"directories,omitempty"`
}

// ClustersGenerator generates parameters from the clusters registered in Argo CD
type ClustersGenerator struct {
	// Selector restricts the clusters by label
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
}

// MatrixGenerator combines the parameters of two generators
type MatrixGenerator struct {
	Generators []ApplicationSetGenerator `json:"generators"`
}

// ApplicationSetGenerator is one generator entry. Only one field is set.
type ApplicationSetGenerator struct {
	Git      *GitGenerator      `json:"git,omitempty"`
	Matrix   *MatrixGenerator   `json:"matrix,omitempty"`
	Clusters *ClustersGenerator `json:"clusters,omitempty"`
}

// IsGit reports whether the entry is a git generator with a repository and
// revision
func (g ApplicationSetGenerator) IsGit() bool {
	return g.Git != nil && g.Git.RepoURL != "" && g.Git.Revision != ""
}

// IsClusters reports whether the entry is a clusters generator
func (g ApplicationSetGenerator) IsClusters() bool {
	return g.Clusters != nil
}

// IsMatrix reports whether the entry is a matrix generator with a generator list
func (g ApplicationSetGenerator) IsMatrix() bool {
	return g.Matrix != nil && g.Matrix.Generators != nil
}

// HelmSource configures Helm rendering of a source
type HelmSource struct {
	ReleaseName             string   `json:"releaseName"`
	IgnoreMissingValueFiles bool     `json:"ignoreMissingValueFiles"`
	ValueFiles              []string `json:"valueFiles,omitempty"`
}

// ApplicationSetSource is a chart or values source of a multi-source template
type ApplicationSetSource struct {
	RepoURL        string      `json:"repoURL"`
	Chart          string      `json:"chart,omitempty"`
	TargetRevision string      `json:"targetRevision"`
	Helm           *HelmSource `json:"helm,omitempty"`
	Ref            string      `json:"ref,omitempty"`
}

// PluginSource names a config management plugin
type PluginSource struct {
	Name string `json:"name"`
}

// KustomizedApplicationSetSource is a git path rendered by a plugin
type KustomizedApplicationSetSource struct {
	RepoURL        string       `json:"repoURL"`
	TargetRevision string       `json:"targetRevision"`
	Path           string       `json:"path"`
	Plugin         PluginSource `json:"plugin"`
}

// TemplateMetadata is the metadata of generated Applications
type TemplateMetadata struct {
	Name        string            `json:"name"`
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// TemplateSyncPolicy is the sync policy of generated Applications
type TemplateSyncPolicy struct {
	Automated SyncPolicyAutomated `json:"automated"`
}

// TemplateSpec is the spec of generated Applications
type TemplateSpec struct {
	Project     string                          `json:"project"`
	Source      *KustomizedApplicationSetSource `json:"source,omitempty"`
	Sources     []ApplicationSetSource          `json:"sources,omitempty"`
	Destination ApplicationDestination          `json:"destination"`
	SyncPolicy  TemplateSyncPolicy              `json:"syncPolicy"`
}

// ApplicationSetTemplate is the Application template of an ApplicationSet
type ApplicationSetTemplate struct {
	Metadata TemplateMetadata `json:"metadata"`
	Spec     TemplateSpec     `json:"spec"`
}

// ApplicationSetSpec defines the generators and template of an ApplicationSet
type ApplicationSetSpec struct {
	// GoTemplate enables Go templating of the template fields
	GoTemplate bool `json:"goTemplate"`

	// GoTemplateOptions are passed to the Go template engine
	GoTemplateOptions []string `json:"goTemplateOptions,omitempty"`

	// Generators produce the parameter sets
	Generators []ApplicationSetGenerator `json:"generators"`

	// Template is rendered once per parameter set
	Template ApplicationSetTemplate `json:"template"`
}

// ApplicationSet is an Argo CD ApplicationSet
type ApplicationSet struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ApplicationSetSpec `json:"spec"`
}

// ConfigFilePaths returns the file patterns of every git generator, including
// the ones nested inside matrix generators
func (a *ApplicationSet) ConfigFilePaths() []string {
	return collectFilePaths(a.Spec.Generators)
}

func collectFilePaths(generators []ApplicationSetGenerator) []string {
	var paths []string
	for _, g := range generators {
		switch {
		case g.IsGit():
			for _, f := range g.Git.Files {
				paths = append(paths, f.Path)
			}
		case g.IsMatrix():
			paths = append(paths, collectFilePaths(g.Matrix.Generators)...)
		}
	}
	return paths
}
