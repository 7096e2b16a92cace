package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jupiter-tools/mongotest/internal/iofs"
	"github.com/jupiter-tools/mongotest/pkg/mongotest"
	"github.com/spf13/cobra"
)

func getExportCmd() *cobra.Command {
	var output string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the content of the database as a data set",
		Long: `Read every collection of the database into a JSON data set.

Collections of documents from the manifest are keyed by the qualified
type name, other collections by their name. Empty collections are left
out.

Examples:
  mongotest export
  mongotest export -o testdata/expected.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd, output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"output file (default STDOUT)",
	)
	scanFlags(exportCmd)
	return exportCmd
}

func runExport(cmd *cobra.Command, output string) error {
	ctx := context.Background()
	start := time.Now()

	var bar *pb.ProgressBar
	tst, err := connect(ctx, mongotest.OptOnRead(
		func(string, int) {
			if bar != nil {
				bar.Increment()
			}
		}))
	if err != nil {
		return err
	}
	defer tst.Close(ctx)

	names, err := tst.Operator().CollectionNames(ctx)
	if err != nil {
		return err
	}
	if output != "" {
		bar = pb.Full.Start(len(names))
		bar.Set("prefix", "Reading collections: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	ds, err := tst.Export(ctx)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	bs, err := ds.Encode(true)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(bs))
	} else if err = iofs.WriteFile(output, bs); err != nil {
		return err
	}

	gn.Info("Exported <em>%s</em> records from <em>%s</em> collections in %s",
		humanize.Comma(int64(ds.Len())),
		humanize.Comma(int64(len(ds))),
		gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}
