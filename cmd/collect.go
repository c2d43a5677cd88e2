package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/profile-scout/internal/catalog"
	"github.com/sells-group/profile-scout/internal/collect"
	"github.com/sells-group/profile-scout/internal/model"
	"github.com/sells-group/profile-scout/internal/search"
	"github.com/sells-group/profile-scout/internal/sink"
)

var (
	collectProvider string
	collectOutput   string
	collectCatalog  string
	collectScope    string
	collectResume   bool
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run a collection sweep over all configured categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		catalogPath := collectCatalog
		if catalogPath == "" {
			catalogPath = cfg.Collect.CatalogPath
		}
		cats, err := catalog.Resolve(catalogPath)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		provider, providerName, err := initProvider(collectProvider)
		if err != nil {
			return err
		}

		output := collectOutput
		if output == "" {
			output = cfg.Output.Path
		}
		csvSink, err := sink.NewCSV(output)
		if err != nil {
			return err
		}
		defer csvSink.Close() //nolint:errcheck

		scope := collectScope
		if scope == "" {
			scope = cfg.Collect.Scope
		}

		run, err := st.CreateRun(ctx, providerName, output)
		if err != nil {
			return eris.Wrap(err, "create run")
		}

		eng := collect.NewEngine(
			provider,
			sink.NewTee(csvSink, sink.NewStoreSink(st, run.ID)),
			search.ParseProfile,
			cats,
			collect.Config{
				CategoryTarget: cfg.Collect.CategoryTarget,
				TargetCap:      cfg.Collect.TargetCap,
				MaxPageIndex:   cfg.Collect.MaxPageIndex,
				PageDelay:      time.Duration(cfg.Collect.PageDelaySecs) * time.Second,
				Site:           cfg.Collect.Site,
				Scope:          scope,
				Destination:    output,
			},
		)

		if collectResume {
			keys, err := sink.SeedKeys(output)
			if err != nil {
				return err
			}
			stored, err := st.SeenKeys(ctx)
			if err != nil {
				return err
			}
			eng.Seed(append(keys, stored...))
			zap.L().Info("seeded dedup set",
				zap.Int("csv_keys", len(keys)),
				zap.Int("store_keys", len(stored)),
			)
		}

		res, err := eng.Run(ctx)
		if err != nil {
			if stErr := st.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); stErr != nil {
				zap.L().Error("failed to mark run failed", zap.Error(stErr))
			}
			return err
		}

		if err := st.CompleteRun(ctx, run.ID, &model.RunResult{
			Total:       len(res.Records),
			PerCategory: res.PerCategory,
		}); err != nil {
			return eris.Wrap(err, "complete run")
		}

		fmt.Fprintf(os.Stdout, "Collected %d records into %s (run %s)\n", len(res.Records), res.Destination, run.ID)
		for _, cat := range cats {
			fmt.Fprintf(os.Stdout, "  %-24s %d\n", cat.Name, res.PerCategory[cat.Name])
		}
		return nil
	},
}

func init() {
	collectCmd.Flags().StringVar(&collectProvider, "provider", "", "search provider: brave or google (default from config)")
	collectCmd.Flags().StringVar(&collectOutput, "output", "", "CSV output path (default from config)")
	collectCmd.Flags().StringVar(&collectCatalog, "categories", "", "category catalog YAML path (default built-in)")
	collectCmd.Flags().StringVar(&collectScope, "scope", "", "phrase anchored to every query, e.g. a school name")
	collectCmd.Flags().BoolVar(&collectResume, "resume", false, "seed the dedup set from prior CSV and store contents")
	rootCmd.AddCommand(collectCmd)
}
