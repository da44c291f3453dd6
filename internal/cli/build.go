package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ioe2040/supporter-wall-go/internal/config"
	"github.com/ioe2040/supporter-wall-go/internal/constants"
	"github.com/ioe2040/supporter-wall-go/internal/domain"
	"github.com/ioe2040/supporter-wall-go/internal/service"
	"github.com/ioe2040/supporter-wall-go/internal/util"
	apperrors "github.com/ioe2040/supporter-wall-go/pkg/errors"
)

var (
	buildURL    string
	buildOutput string
	buildMin    int
	buildDryRun bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch the supporter page and write the rendered wall",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildURL, "url", "", "source page URL (overrides SOURCE_URL)")
	buildCmd.Flags().StringVar(&buildOutput, "out", "", "output file path (overrides OUTPUT_FILE)")
	buildCmd.Flags().IntVar(&buildMin, "min-supporters", 0, "minimum qualifying entries before output is written (overrides MIN_SUPPORTERS)")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "extract and report without writing the output file")
	rootCmd.AddCommand(buildCmd)
}

// runBuild is the whole pipeline: fetch, extract, sanity guard, render,
// write. Strictly sequential; any failure aborts before the output file is
// touched.
func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if buildURL != "" {
		cfg.Scraper.SourceURL = buildURL
	}
	if buildOutput != "" {
		cfg.Output.File = buildOutput
	}
	if buildMin > 0 {
		cfg.Scraper.MinSupporters = buildMin
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logger.Sync()

	fetcher := service.NewFetcherService(cfg.Scraper.Timeout, cfg.Scraper.UserAgent, logger)
	extractor, err := service.NewExtractorService(cfg.Scraper.BaseURL, constants.SkipTitles, logger)
	if err != nil {
		return err
	}
	renderer := service.NewRendererService(logger)

	logger.Info("Fetching supporter page", zap.String("url", cfg.Scraper.SourceURL))
	pageHTML, err := fetcher.Fetch(cmd.Context(), cfg.Scraper.SourceURL)
	if err != nil {
		return err
	}

	supporters, err := extractor.Extract(pageHTML)
	if err != nil {
		return err
	}

	reportMissingIndustry(logger, supporters)

	if len(supporters) < cfg.Scraper.MinSupporters {
		return apperrors.NewExtractionError("extraction looks wrong - aborting before write",
			len(supporters), cfg.Scraper.MinSupporters)
	}

	if buildDryRun {
		logger.Info("Dry run complete, skipping write", zap.Int("supporters", len(supporters)))
		return nil
	}

	page, err := renderer.Render(supporters)
	if err != nil {
		return err
	}
	if err := renderer.WriteFile(cfg.Output.File, page); err != nil {
		return err
	}

	logger.Info("Supporter wall built",
		zap.String("file", cfg.Output.File),
		zap.Int("supporters", len(supporters)))

	return nil
}

// reportMissingIndustry is operator visibility only: entries without a
// Branche field are expected on the source page and not an error.
func reportMissingIndustry(logger *zap.Logger, supporters []domain.Supporter) {
	missing := make([]string, 0)
	for _, s := range supporters {
		if s.Industry == "" {
			missing = append(missing, s.Name)
		}
	}

	preview := missing
	if len(preview) > constants.Guard.MissingIndustryPreview {
		preview = preview[:constants.Guard.MissingIndustryPreview]
	}

	logger.Info("Entries without Branche field",
		zap.Int("count", len(missing)),
		zap.Strings("first", preview))
}
