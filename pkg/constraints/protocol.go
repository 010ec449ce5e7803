package constraints

// SchemaVersion is the client-features envelope version this tool emits.
const SchemaVersion = 2

const (
	StrategyFlexibleRollout = "flexibleRollout"
	StrategyDefault         = "default"
)

const (
	FeatureTypeRelease = "release"
	ProjectDefault     = "default"
)

// ParamRollout is the percentage parameter carried by flexibleRollout strategies.
const ParamRollout = "rollout"
