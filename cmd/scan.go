package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/internal/iomanifest"
	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/spf13/cobra"
)

func getScanCmd() *cobra.Command {
	var manifestOut string

	scanCmd := &cobra.Command{
		Use:   "scan [namespace]",
		Short: "Show collections of documents under a namespace",
		Long: `Resolve collection names of documents from the manifest.

The namespace is an import path prefix. Without it the configured base
package is used, and if that is empty, all documents are shown.

A collection name is taken from the 'collection' attribute, then from
'value', then from the lowercased type name.

With --write-manifest the scanned documents are saved as a new manifest,
sorted by collection and limited to the namespace.

Examples:
  mongotest scan
  mongotest scan github.com/acme/shop/model
  mongotest scan -w shop.yaml github.com/acme/shop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Update([]config.Option{config.OptScanBasePackage(args[0])})
			}
			err := runScan(cmd, manifestOut)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	scanCmd.Flags().StringVarP(
		&manifestOut, "write-manifest", "w", "",
		"save scanned documents as a manifest file",
	)
	scanFlags(scanCmd)
	return scanCmd
}

func runScan(cmd *cobra.Command, manifestOut string) error {
	sr, err := scanner().Scan(cfg.Scan.BasePackage)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, v := range sr.Collections() {
		fmt.Fprintf(out, "%s\t%s\n", v, sr[v].FullName())
	}

	gn.Info("Found <em>%s</em> collections in <em>%s</em>",
		humanize.Comma(int64(len(sr))), cfg.ManifestPath())

	if manifestOut == "" {
		return nil
	}
	if err = iomanifest.Write(manifestOut, iomanifest.FromDescriptors(sr)); err != nil {
		return err
	}
	gn.Info("Manifest saved to <em>%s</em>", manifestOut)
	return nil
}
