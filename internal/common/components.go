package common

const (
	ComponentAPI        = "api"
	ComponentDataset    = "dataset"
	ComponentAggregator = "aggregator"
	ComponentValidator  = "validator"
	ComponentMetrics    = "metrics"
)

var AllComponents = map[string]struct{}{
	ComponentAPI:        {},
	ComponentDataset:    {},
	ComponentAggregator: {},
	ComponentValidator:  {},
	ComponentMetrics:    {},
}
