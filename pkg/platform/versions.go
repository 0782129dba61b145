package platform

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// NewContainerVersionsList builds a version list ordered newest first
func NewContainerVersionsList(name string, versions []string) ContainerVersionsList {
	list := ContainerVersionsList{Name: name}
	list.Versions.Items = SortVersions(versions)
	return list
}

// SortVersions orders versions newest first. Tags that are not semantic
// versions keep their relative order and are placed after all semantic ones.
func SortVersions(versions []string) []string {
	type entry struct {
		raw    string
		parsed *semver.Version
	}

	entries := make([]entry, 0, len(versions))
	for _, v := range versions {
		// unparseable tags keep a nil version
		parsed, _ := semver.NewVersion(v)
		entries = append(entries, entry{raw: v, parsed: parsed})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].parsed, entries[j].parsed
		switch {
		case a != nil && b != nil:
			return a.GreaterThan(b)
		case a != nil:
			return true
		default:
			return false
		}
	})

	sorted := make([]string, 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, e.raw)
	}
	return sorted
}

// Latest returns the newest semantic version in the list
func (l ContainerVersionsList) Latest() (string, bool) {
	for _, v := range SortVersions(l.Versions.Items) {
		if _, err := semver.NewVersion(v); err == nil {
			return v, true
		}
	}
	return "", false
}
