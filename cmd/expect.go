package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/dataset"
	"github.com/spf13/cobra"
)

func getExpectCmd() *cobra.Command {
	expectCmd := &cobra.Command{
		Use:   "expect <file>",
		Short: "Compare the database with an expected data set",
		Long: `Check that the database holds the records of an expected data set.

Expected records may list only some fields. Every expected collection
must have exactly as many records as the data set lists, and every
expected record must match its own record in the database.

Examples:
  mongotest expect testdata/expected.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExpect(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	scanFlags(expectCmd)
	return expectCmd
}

func runExpect(path string) error {
	ctx := context.Background()

	ds, err := dataset.Parse(dataset.File(path))
	if err != nil {
		return err
	}

	tst, err := connect(ctx)
	if err != nil {
		return err
	}
	defer tst.Close(ctx)

	// mismatches are listed by the error message
	if err = tst.ExpectDataSet(ctx, ds); err != nil {
		return err
	}

	gn.Info("Database matches <em>%s</em> records of <em>%s</em>",
		humanize.Comma(int64(ds.Len())), path)
	return nil
}

