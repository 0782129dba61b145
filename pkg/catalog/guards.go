package catalog

type fieldKind int

const (
	kindString fieldKind = iota
)

// fieldRule is one entry of a structural validator: the field must be present
// with the given kind unless it is optional, in which case it may be absent
type fieldRule struct {
	name     string
	kind     fieldKind
	optional bool
}

var simpleConfigRules = []fieldRule{
	{name: "targetCluster", kind: kindString},
	{name: "env", kind: kindString},
	{name: "stripe", kind: kindString},
	{name: "projectName", kind: kindString},
	{name: "namespace", kind: kindString, optional: true},
}

var chartConfigRules = []fieldRule{
	{name: "targetCluster", kind: kindString},
	{name: "env", kind: kindString},
	{name: "stripe", kind: kindString},
	{name: "projectName", kind: kindString},
	{name: "namespace", kind: kindString, optional: true},
	{name: "chartRepository", kind: kindString},
	{name: "chartName", kind: kindString},
	{name: "chartVersion", kind: kindString},
	{name: "releaseName", kind: kindString},
}

// IsSimpleApplicationSetConfig reports whether v has the shape of a
// SimpleApplicationSetConfig. Chart configs also match.
func IsSimpleApplicationSetConfig(v any) bool {
	doc, ok := asDocument(v)
	return ok && matches(doc, simpleConfigRules)
}

// IsChartApplicationSetConfig reports whether v has the shape of a
// ChartApplicationSetConfig
func IsChartApplicationSetConfig(v any) bool {
	doc, ok := asDocument(v)
	return ok && matches(doc, chartConfigRules)
}

// asDocument accepts the map shapes produced by JSON and YAML decoders
func asDocument(v any) (map[string]any, bool) {
	switch doc := v.(type) {
	case map[string]any:
		return doc, doc != nil
	case map[string]string:
		if doc == nil {
			return nil, false
		}
		m := make(map[string]any, len(doc))
		for k, v := range doc {
			m[k] = v
		}
		return m, true
	default:
		return nil, false
	}
}

func matches(doc map[string]any, rules []fieldRule) bool {
	for _, rule := range rules {
		value, present := doc[rule.name]
		if !present {
			if rule.optional {
				continue
			}
			return false
		}

		if !rule.kind.check(value) {
			return false
		}
	}
	return true
}

func (k fieldKind) check(value any) bool {
	switch k {
	case kindString:
		_, ok := value.(string)
		return ok
	default:
		return false
	}
}

func stringField(doc map[string]any, name string) string {
	s, _ := doc[name].(string)
	return s
}
