package helm

import (
	"fmt"
	"time"

	"github.com/vexxhost/hyper-platform/pkg/platform"
	"helm.sh/helm/v3/pkg/repo"
)

// ChartVersion is one published version of a chart
type ChartVersion struct {
	APIVersion  string    `json:"apiVersion"`
	AppVersion  string    `json:"appVersion,omitempty"`
	Created     time.Time `json:"created"`
	Description string    `json:"description"`
	Digest      string    `json:"digest"`
	Name        string    `json:"name"`
	URLs        []string  `json:"urls"`
	Version     string    `json:"version"`
}

// RepositoryIndex is the index.yaml of a chart repository
type RepositoryIndex struct {
	APIVersion string                    `json:"apiVersion"`
	Entries    map[string][]ChartVersion `json:"entries"`
	Generated  time.Time                 `json:"generated"`
}

// LoadRepositoryIndex reads a repository index.yaml
func LoadRepositoryIndex(path string) (*RepositoryIndex, error) {
	indexFile, err := repo.LoadIndexFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load repository index: %w", err)
	}

	index := &RepositoryIndex{
		APIVersion: indexFile.APIVersion,
		Entries:    make(map[string][]ChartVersion, len(indexFile.Entries)),
		Generated:  indexFile.Generated,
	}

	for name, versions := range indexFile.Entries {
		for _, v := range versions {
			if v == nil || v.Metadata == nil {
				continue
			}

			index.Entries[name] = append(index.Entries[name], ChartVersion{
				APIVersion:  v.APIVersion,
				AppVersion:  v.AppVersion,
				Created:     v.Created,
				Description: v.Description,
				Digest:      v.Digest,
				Name:        v.Name,
				URLs:        v.URLs,
				Version:     v.Version,
			})
		}
	}

	return index, nil
}

// Versions returns the published versions of a chart, newest first
func (i *RepositoryIndex) Versions(name string) (platform.ContainerVersionsList, bool) {
	entries, ok := i.Entries[name]
	if !ok {
		return platform.ContainerVersionsList{}, false
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		versions = append(versions, e.Version)
	}

	return platform.NewContainerVersionsList(name, versions), true
}
