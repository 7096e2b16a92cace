package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
func getPopulateCmd() *cobra.Command {
	var clean bool

	populateCmd := &cobra.Command{
		Use:   "populate <file>",
		Short: "Insert a data set into the database",
		Long: `Insert records of a JSON data set into the database.

Keys of the data set are collection names or qualified type names of
documents from the manifest. Records follow MongoDB relaxed Extended
JSON, e.g. {"_id": {"$oid": "..."}}.

Examples:
  mongotest populate testdata/init.json
  mongotest populate --clean -d orders_test testdata/init.json`,
		Aliases: []string{"add"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(args[0], clean)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().BoolVar(
		&clean, "clean", false,
		"drop all collections before inserting",
	)
	scanFlags(populateCmd)
	return populateCmd
}

func runPopulate(path string, clean bool) error {
	ctx := context.Background()
	start := time.Now()

	ds, err := dataset.Parse(dataset.File(path))
	if err != nil {
		return err
	}

	tst, err := connect(ctx)
	if err != nil {
		return err
	}
	defer tst.Close(ctx)

	if clean {
		if err = tst.CleanUp(ctx); err != nil {
			return err
		}
		gn.Info("Dropped all collections")
	}

	n, err := tst.Load(ctx, ds)
	if err != nil {
		return err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Populated database",
		"file", path, "records", n, "duration", dur)
	gn.Info("Inserted <em>%s</em> records into <em>%s</em> in %s",
		humanize.Comma(int64(n)), cfg.Mongo.Database, dur)
	return nil
}
