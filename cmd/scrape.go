package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/export"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/pipeline"
	"github.com/sells-group/leadgen-cli/internal/preset"
	"github.com/sells-group/leadgen-cli/pkg/places"
)

var scrapeFlags struct {
	preset         string
	location       string
	radius         int
	maxResults     int
	batchSize      int
	minRating      float64
	maxRating      float64
	requirePhone   bool
	requireWebsite bool
	includeClosed  bool
	output         string
	noStore        bool
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [query]",
	Short: "Run the lead acquisition pipeline for a query",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Google.APIKey == "" {
			return eris.New("google places API key is required (LEADGEN_GOOGLE_API_KEY)")
		}

		queryCfg := model.QueryConfig{
			Location:                scrapeFlags.location,
			RadiusMeters:            scrapeFlags.radius,
			MaxResults:              scrapeFlags.maxResults,
			BatchSize:               scrapeFlags.batchSize,
			MinRating:               scrapeFlags.minRating,
			MaxRating:               scrapeFlags.maxRating,
			RequirePhone:            scrapeFlags.requirePhone,
			RequireWebsite:          scrapeFlags.requireWebsite,
			IncludeClosedBusinesses: scrapeFlags.includeClosed,
			OutputTarget:            scrapeFlags.output,
		}
		if len(args) == 1 {
			queryCfg.Query = args[0]
		}

		if scrapeFlags.preset != "" {
			registry, err := preset.Load(cfg.Presets.Path)
			if err != nil {
				return err
			}
			p, ok := registry.Get(scrapeFlags.preset)
			if !ok {
				return eris.Errorf("unknown preset: %s", scrapeFlags.preset)
			}
			queryCfg = p.Apply(queryCfg)
		}
		if queryCfg.Query == "" {
			return eris.New("a query or a preset is required")
		}
		if queryCfg.MaxResults == 0 {
			queryCfg.MaxResults = cfg.Pipeline.MaxResults
		}
		if queryCfg.BatchSize == 0 {
			queryCfg.BatchSize = cfg.Pipeline.BatchSize
		}
		queryCfg = queryCfg.Normalized()

		clientOpts := []places.Option{places.WithRateLimit(cfg.Google.RateLimit)}
		if cfg.Google.BaseURL != "" {
			clientOpts = append(clientOpts, places.WithBaseURL(cfg.Google.BaseURL))
		}
		client := places.NewClient(cfg.Google.APIKey, clientOpts...)

		p := pipeline.New(client, pipeline.Options{
			Delays: pipeline.DelayPolicy{
				Pagination: cfg.Delays.Pagination,
				RateLimit:  cfg.Delays.RateLimit,
				Retry:      cfg.Delays.Retry,
				Batch:      cfg.Delays.Batch,
			},
			MaxAttempts: cfg.Pipeline.MaxAttempts,
		})

		var st storeHandle
		if !scrapeFlags.noStore {
			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close() //nolint:errcheck
			if err := s.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}
			run, err := s.CreateRun(ctx, queryCfg)
			if err != nil {
				return eris.Wrap(err, "create run")
			}
			st.store, st.runID = s, run.ID
		}

		result, err := p.Run(ctx, queryCfg)
		if err != nil {
			st.fail(ctx, err)
			return eris.Wrap(err, "pipeline run")
		}

		if result.Incomplete {
			zap.L().Warn("run truncated before the result cap",
				zap.String("truncated_by", result.TruncatedBy),
				zap.Bool("transient", result.Transient),
				zap.Int("places", len(result.Summaries)),
			)
		}

		outPath := queryCfg.OutputTarget
		if outPath == "" {
			outPath = export.OutputPath(cfg.Export.Dir, queryCfg.Query, cfg.Export.Format, time.Now())
		}
		switch cfg.Export.Format {
		case "xlsx":
			err = export.WriteXLSX(result.Leads, outPath)
		default:
			err = export.WriteCSV(result.Leads, outPath)
		}
		if err != nil {
			st.fail(ctx, err)
			return err
		}

		st.complete(ctx, result)

		zap.L().Info("scrape complete",
			zap.String("output", outPath),
			zap.Int("places_found", len(result.Summaries)),
			zap.Int("leads", len(result.Leads)),
			zap.Float64("avg_rating", result.Stats.AvgRating),
			zap.Float64("phone_pct", result.Stats.PhonePct),
			zap.Float64("website_pct", result.Stats.WebsitePct),
		)
		return nil
	},
}

func init() {
	f := scrapeCmd.Flags()
	f.StringVar(&scrapeFlags.preset, "preset", "", "named query preset")
	f.StringVar(&scrapeFlags.location, "location", "", "search center as lat,lng")
	f.IntVar(&scrapeFlags.radius, "radius", 0, "search radius in meters (with --location)")
	f.IntVar(&scrapeFlags.maxResults, "max-results", 0, "result cap")
	f.IntVar(&scrapeFlags.batchSize, "batch-size", 0, "enrichment batch size")
	f.Float64Var(&scrapeFlags.minRating, "min-rating", 0, "minimum rating filter")
	f.Float64Var(&scrapeFlags.maxRating, "max-rating", 0, "maximum rating filter")
	f.BoolVar(&scrapeFlags.requirePhone, "require-phone", false, "drop leads without a phone number")
	f.BoolVar(&scrapeFlags.requireWebsite, "require-website", false, "drop leads without a website")
	f.BoolVar(&scrapeFlags.includeClosed, "include-closed", false, "keep permanently closed businesses")
	f.StringVarP(&scrapeFlags.output, "output", "o", "", "output file path")
	f.BoolVar(&scrapeFlags.noStore, "no-store", false, "skip recording the run")

	rootCmd.AddCommand(scrapeCmd)
}
