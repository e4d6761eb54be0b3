package constants

// ProjectName is the canonical name used in CLI output and config paths.
const ProjectName = "fnbridge"

// Environment represents the execution environment (e.g., Lambda, local CLI).
type Environment string

// Environment types for logger configuration.
const (
	Development Environment = "development"
	Production  Environment = "production"
)
