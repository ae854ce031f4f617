package config

// ReporterConfig defines configuration for report and patch export.
type ReporterConfig struct {
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	Theme     string `json:"theme,omitempty" yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
}

// NewDefaultReporterConfig creates default reporter configuration.
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir: DefaultReportOutputDir,
		Theme:     DefaultReportTheme,
	}
}
