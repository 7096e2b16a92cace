package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getCleanUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Drop all collections of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCleanUp()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
}

func runCleanUp() error {
	ctx := context.Background()
	tst, err := connect(ctx)
	if err != nil {
		return err
	}
	defer tst.Close(ctx)

	if err = tst.CleanUp(ctx); err != nil {
		return err
	}
	gn.Info("Dropped all collections of <em>%s</em>", cfg.Mongo.Database)
	return nil
}
