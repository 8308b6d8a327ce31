package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	NLP      NLPConfig      `mapstructure:"nlp"      yaml:"nlp"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Output   OutputConfig   `mapstructure:"output"   yaml:"output"`
	Log      LogConfig      `mapstructure:"log"      yaml:"log"`
}

type NLPConfig struct {
	ServerURL string `mapstructure:"server_url" yaml:"server_url"`
}

// AnalysisConfig controls aggregation. TopEntities is how many of the most
// frequent entities are computed; TopDisplay is how many of those the console
// summary shows. TopEntities is intentionally the larger of the two.
type AnalysisConfig struct {
	Language    string `mapstructure:"language"     yaml:"language"`
	TopEntities int    `mapstructure:"top_entities" yaml:"top_entities"`
	TopDisplay  int    `mapstructure:"top_display"  yaml:"top_display"`
}

type OutputConfig struct {
	ResultsFile string `mapstructure:"results_file" yaml:"results_file"`
	ReportFile  string `mapstructure:"report_file"  yaml:"report_file"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}
