package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/internal/iomanifest"
	"github.com/jupiter-tools/mongotest/internal/iomongo"
	"github.com/jupiter-tools/mongotest/pkg/document"
	"github.com/jupiter-tools/mongotest/pkg/mongotest"
	"github.com/spf13/cobra"
)

// scanner reads document types from the manifest, as the CLI cannot
// see types registered by an application.
func scanner() *document.Scanner {
	return document.NewScanner(
		iomanifest.New(cfg.ManifestPath()),
		document.OptStrict(cfg.Scan.Strict),
	)
}

func connect(
	ctx context.Context,
	opts ...mongotest.Option,
) (*mongotest.Tester, error) {
	op := iomongo.NewOperator()
	if err := op.Connect(ctx, &cfg.Mongo); err != nil {
		return nil, err
	}
	gn.Info("Connected to database <em>%s</em>", cfg.Mongo.Database)

	opts = append([]mongotest.Option{
		mongotest.OptBasePackage(cfg.Scan.BasePackage),
		mongotest.OptJobsNumber(cfg.JobsNumber),
	}, opts...)
	return mongotest.New(op, scanner(), opts...), nil
}

// scanFlags adds flags of commands that resolve document types.
func scanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("base-package", "b", "",
		"import path prefix of document types (empty = all)")
	cmd.Flags().Bool("strict", false,
		"fail when two types resolve to the same collection")
}
