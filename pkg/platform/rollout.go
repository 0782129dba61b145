package platform

// AnalysisTemplateConfig configures the analysis template used by canary steps
type AnalysisTemplateConfig struct {
	Enabled       bool    `json:"enabled"`
	InitialDelay  string  `json:"initialDelay"`
	Duration      string  `json:"duration"`
	SuccessRate   float64 `json:"successRate"`
	MaxP95Latency float64 `json:"maxP95Latency"`
	MaxErrorRate  float64 `json:"maxErrorRate"`
}

// AnalysisConfig bounds the analysis run history kept by a rollout
type AnalysisConfig struct {
	SuccessfulRunHistoryLimit   *int32 `json:"successfulRunHistoryLimit,omitempty"`
	UnsuccessfulRunHistoryLimit *int32 `json:"unsuccessfulRunHistoryLimit,omitempty"`
}

// PauseStep pauses a rollout. An empty duration waits for manual approval.
type PauseStep struct {
	Duration string `json:"duration,omitempty"`
}

// AnalysisTemplateRef references an analysis template by name
type AnalysisTemplateRef struct {
	TemplateName string `json:"templateName"`
}

// AnalysisStep runs analysis templates during a rollout
type AnalysisStep struct {
	Templates []AnalysisTemplateRef `json:"templates"`
}

// RolloutStepKind identifies which action a canary step performs
type RolloutStepKind string

const (
	RolloutStepSetWeight RolloutStepKind = "setWeight"
	RolloutStepPause     RolloutStepKind = "pause"
	RolloutStepAnalysis  RolloutStepKind = "analysis"
)

// RolloutStep is one canary step. Exactly one field is set.
type RolloutStep struct {
	SetWeight *int32        `json:"setWeight,omitempty"`
	Pause     *PauseStep    `json:"pause,omitempty"`
	Analysis  *AnalysisStep `json:"analysis,omitempty"`
}

// Kind returns the action of the step, or an empty kind when the step sets
// none or more than one action
func (s RolloutStep) Kind() RolloutStepKind {
	var kind RolloutStepKind
	set := 0

	if s.SetWeight != nil {
		kind = RolloutStepSetWeight
		set++
	}
	if s.Pause != nil {
		kind = RolloutStepPause
		set++
	}
	if s.Analysis != nil {
		kind = RolloutStepAnalysis
		set++
	}

	if set != 1 {
		return ""
	}
	return kind
}

// IsManualApproval reports whether the step is a pause without duration
func (s RolloutStep) IsManualApproval() bool {
	return s.Kind() == RolloutStepPause && s.Pause.Duration == ""
}

// CanaryStrategy configures an Argo Rollouts canary
type CanaryStrategy struct {
	MaxSurge              int32         `json:"maxSurge"`
	MaxUnavailable        int32         `json:"maxUnavailable"`
	ScaleDownDelaySeconds *int32        `json:"scaleDownDelaySeconds,omitempty"`
	Steps                 []RolloutStep `json:"steps"`
}

// RolloutStrategy wraps the canary strategy
type RolloutStrategy struct {
	Canary CanaryStrategy `json:"canary"`
}

// RolloutConfig is the rollout section of a rollout-based workload
type RolloutConfig struct {
	Analysis                AnalysisConfig         `json:"analysis"`
	AnalysisTemplate        AnalysisTemplateConfig `json:"analysisTemplate"`
	Strategy                RolloutStrategy        `json:"strategy"`
	ProgressDeadlineSeconds *int32                 `json:"progressDeadlineSeconds,omitempty"`
}
