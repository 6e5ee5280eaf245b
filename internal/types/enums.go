package types

// BuildStatus is the tri-state outcome of the latest CI run for a branch.
type BuildStatus string

const (
	BuildStatusSuccess  BuildStatus = "success"
	BuildStatusBuilding BuildStatus = "building"
	BuildStatusFailed   BuildStatus = "failed"
)

type OutputFormat string

const (
	OutputFormatPlain OutputFormat = "plain"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)
