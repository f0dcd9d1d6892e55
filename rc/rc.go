// Package rc holds the vitae runtime configuration: filter policies and
// collection locations, loaded from TOML config files and VITAE_*
// environment variables.
package rc

// Config represents the vitae runtime configuration
type Config struct {
	Filters     FiltersConfig     `mapstructure:"filters"`
	Collections CollectionsConfig `mapstructure:"collections"`
}

// FiltersConfig configures pipeline policies
type FiltersConfig struct {
	// SkipOnError drops documents with contract violations instead of
	// aborting the batch (default: false, fail-fast)
	SkipOnError bool `mapstructure:"skip_on_error"`
	// PresentationStatuses is the default status allow-list (default: ["accepted"])
	PresentationStatuses []string `mapstructure:"presentation_statuses"`
	// PresentationTypes is the default type allow-list (default: ["all"])
	PresentationTypes []string `mapstructure:"presentation_types"`
	// BoldWrapper is the LaTeX macro wrapping matched author names (default: "textbf")
	BoldWrapper string `mapstructure:"bold_wrapper"`
}

// CollectionsConfig configures where YAML collection files live
type CollectionsConfig struct {
	// Dir is the directory holding <collection>.yml files (default: ".")
	Dir string `mapstructure:"dir"`
}
