package workload

import "github.com/huandu/xstrings"

// PlatformBaseCharts are the workload types backed by a platform base chart,
// keyed by their constant name
var PlatformBaseCharts = map[string]WorkloadType{
	"BASIC_CONTAINER_LOAD":    WorkloadTypeBasicContainerLoad,
	"BASIC_CONTAINER_ROLLOUT": WorkloadTypeBasicContainerRollout,
	"STATEFUL_CONTAINER_LOAD": WorkloadTypeStatefulContainerLoad,
}

// KebabCaseToPlatformChart maps a chart directory name such as
// basic-container-load to its workload type
var KebabCaseToPlatformChart = kebabCaseChartMap(PlatformBaseCharts)

func kebabCaseChartMap(charts map[string]WorkloadType) map[string]WorkloadType {
	m := make(map[string]WorkloadType, len(charts))
	for key, value := range charts {
		m[xstrings.ToKebabCase(key)] = value
	}
	return m
}

// ChartForDirectory returns the workload type of a platform base chart
// directory
func ChartForDirectory(dir string) (WorkloadType, bool) {
	w, ok := KebabCaseToPlatformChart[dir]
	return w, ok
}
