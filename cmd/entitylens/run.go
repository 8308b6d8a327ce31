package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/entitylens/entitylens/config"
	"github.com/entitylens/entitylens/pkg/analysis"
	"github.com/entitylens/entitylens/pkg/extractors"
	"github.com/entitylens/entitylens/pkg/models"
	"github.com/entitylens/entitylens/pkg/output"
	"github.com/entitylens/entitylens/pkg/report"
)

// run is the entrypoint for an entitylens analysis run
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring entitylens: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting entitylens version %s", VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	if err := runAnalysis(context.Background(), appState); err != nil {
		log.Fatalf("Analysis run failed: %s", err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// initializes the entity extractor. The extractor must be reachable before
// any analysis starts; a broken extractor is a fatal precondition failure.
func NewAppState(cfg *config.Config) *models.AppState {
	extractor := extractors.NewNLPExtractor(cfg)

	if err := extractor.WaitUntilAvailable(context.Background()); err != nil {
		log.Fatalf("Entity extraction service is unavailable: %s", err)
	}
	log.Infof("Using NLP server at %s", cfg.NLP.ServerURL)

	return &models.AppState{
		Config:    cfg,
		Extractor: extractor,
	}
}

// runAnalysis walks the sample corpus through extraction, reporting,
// persistence, and the ad-hoc custom text check.
func runAnalysis(ctx context.Context, appState *models.AppState) error {
	cfg := appState.Config
	runID := uuid.New()

	texts := analysis.SampleTexts()
	log.Infof("Analyzing %d sample texts (run %s)", len(texts), runID)

	analyzer := analysis.NewAnalyzer(appState.Extractor)
	results, err := analyzer.Analyze(ctx, texts)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		log.Info("No entities found in any of the sample texts")
		return nil
	}

	stats, err := report.Summarize(results, appState.Extractor.Describe, cfg.Analysis.TopEntities)
	if err != nil {
		return err
	}
	report.Print(os.Stdout, stats, cfg.Analysis.TopDisplay)

	persister := output.NewPersister(cfg.Output.ResultsFile, cfg.Output.ReportFile)
	if err := persister.Save(results, stats, runID); err != nil {
		log.Warnf("Could not save result files: %s", err)
	} else {
		log.Infof("Results saved to %s and %s", cfg.Output.ResultsFile, cfg.Output.ReportFile)
	}

	return analyzer.Inspect(ctx, analysis.CustomText, os.Stdout)
}

// handleCLIOptions handles CLI options that don't require a run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		dumped, err := yaml.Marshal(cfg)
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(dumped))
		os.Exit(0)
	}
}
