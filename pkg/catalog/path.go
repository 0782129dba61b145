package catalog

import (
	"fmt"
	"strings"

	"sigs.k8s.io/yaml"
)

// Positions of the segments of an ApplicationSet config file path:
// <catalog>/<workload>/<config>/<env>/<state>/<file>
const (
	CatalogIndex   = 0
	WorkloadIndex  = 1
	ConfigIndex    = 2
	EnvIndex       = 3
	StateIndex     = 4
	FilenameIndex  = 5
	ExpectedLength = 6
)

const (
	stateActive   = "active"
	stateInactive = "inactive"
)

// ConfigPath is a parsed ApplicationSet config file path
type ConfigPath struct {
	Path     string
	Catalog  string
	Workload string
	Config   string
	Env      string
	State    string
	Filename string
}

// ParseConfigPath splits a repository relative config file path
func ParseConfigPath(path string) (ConfigPath, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) != ExpectedLength {
		return ConfigPath{}, fmt.Errorf("config path %q has %d segments, expected %d", path, len(segments), ExpectedLength)
	}

	for _, s := range segments {
		if s == "" {
			return ConfigPath{}, fmt.Errorf("config path %q has an empty segment", path)
		}
	}

	return ConfigPath{
		Path:     path,
		Catalog:  segments[CatalogIndex],
		Workload: segments[WorkloadIndex],
		Config:   segments[ConfigIndex],
		Env:      segments[EnvIndex],
		State:    segments[StateIndex],
		Filename: segments[FilenameIndex],
	}, nil
}

// Active returns whether the config is in an active or inactive directory,
// or nil for any other directory
func (p ConfigPath) Active() *bool {
	var active bool
	switch p.State {
	case stateActive:
		active = true
	case stateInactive:
		active = false
	default:
		return nil
	}
	return &active
}

// Dir returns the directory holding the config file
func (p ConfigPath) Dir() string {
	return strings.Join([]string{p.Catalog, p.Workload, p.Config, p.Env, p.State}, "/")
}

// ConfigFileInfo describes a config file found in a catalog
type ConfigFileInfo struct {
	Path         string `json:"path"`
	WorkloadName string `json:"workloadName"`
	Active       bool   `json:"active"`
}

// Info returns the file info of the path
func (p ConfigPath) Info() ConfigFileInfo {
	active := p.Active()
	return ConfigFileInfo{
		Path:         p.Path,
		WorkloadName: p.Workload,
		Active:       active != nil && *active,
	}
}

// IsConfigFile reports whether a file name can hold an ApplicationSet config
func IsConfigFile(name string) bool {
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// Classify decodes a config file and classifies it. Files that decode but do
// not match a known shape produce a result with a nil record.
func Classify(path string, data []byte) (ApplicationSetConfigResult, error) {
	result := ApplicationSetConfigResult{Name: path}

	if p, err := ParseConfigPath(path); err == nil {
		result.Active = p.Active()
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return result, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if record, ok := ParseApplicationSetConfig(doc); ok {
		result.Record = record
	}

	return result, nil
}
