package platform

import "fmt"

// Environment is a deployment environment name
type Environment string

const (
	EnvironmentDev     Environment = "dev"
	EnvironmentSyst    Environment = "syst"
	EnvironmentUAT     Environment = "uat"
	EnvironmentProd    Environment = "prod"
	EnvironmentCore    Environment = "core"
	EnvironmentCoreDev Environment = "core-dev"
)

// Environments lists every known environment
var Environments = []Environment{
	EnvironmentDev,
	EnvironmentSyst,
	EnvironmentUAT,
	EnvironmentProd,
	EnvironmentCore,
	EnvironmentCoreDev,
}

// OrderedEnvironments is the promotion order for workload environments
var OrderedEnvironments = []Environment{
	EnvironmentDev,
	EnvironmentSyst,
	EnvironmentUAT,
}

// OrderedCoreEnvironments is the promotion order for core environments
var OrderedCoreEnvironments = []Environment{
	EnvironmentCoreDev,
	EnvironmentCore,
}

// IsValid reports whether the environment is one of the known environments
func (e Environment) IsValid() bool {
	for _, env := range Environments {
		if env == e {
			return true
		}
	}
	return false
}

// ParseEnvironment converts a string into a known Environment
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(s)
	if !env.IsValid() {
		return "", fmt.Errorf("unknown environment %q", s)
	}
	return env, nil
}

// NextEnvironment returns the environment that follows env in its promotion
// order. The second return value is false when env is the last one or is not
// part of any promotion order.
func NextEnvironment(env Environment) (Environment, bool) {
	for _, order := range [][]Environment{OrderedEnvironments, OrderedCoreEnvironments} {
		for i, e := range order {
			if e == env && i+1 < len(order) {
				return order[i+1], true
			}
		}
	}
	return "", false
}

// EnvironmentSet groups environments by purpose
type EnvironmentSet string

const (
	EnvironmentSetGitOps        EnvironmentSet = "gitops"
	EnvironmentSetMainUserspace EnvironmentSet = "main-userspace"
	EnvironmentSetDataOps       EnvironmentSet = "data-ops"
)

// EnvironmentMapping assigns environments to an environment set
type EnvironmentMapping struct {
	Name         EnvironmentSet `json:"name"`
	Environments []Environment  `json:"environments"`
}

// EnvironmentMap is the list of all environment set mappings
type EnvironmentMap []EnvironmentMapping

// Lookup returns the environments of the named set
func (m EnvironmentMap) Lookup(name EnvironmentSet) ([]Environment, bool) {
	for _, mapping := range m {
		if mapping.Name == name {
			return mapping.Environments, true
		}
	}
	return nil, false
}

// DeploymentTrigger describes what causes a deployment to an environment
type DeploymentTrigger string

const (
	DeploymentTriggerManual DeploymentTrigger = "MANUAL"
	DeploymentTriggerE2E    DeploymentTrigger = "E2E"
	DeploymentTriggerAuto   DeploymentTrigger = "AUTO"
)
