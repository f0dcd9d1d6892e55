package rc

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Filter policy defaults
	v.SetDefault("filters.skip_on_error", false)
	v.SetDefault("filters.presentation_statuses", []string{"accepted"})
	v.SetDefault("filters.presentation_types", []string{"all"})
	v.SetDefault("filters.bold_wrapper", "textbf")

	// Collection location defaults
	v.SetDefault("collections.dir", ".")
}
