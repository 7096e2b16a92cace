package cmd

import (
	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/spf13/cobra"
)

// flagOptions converts explicitly set persistent flags to options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("uri") {
		s, _ := flags.GetString("uri")
		res = append(res, config.OptMongoURI(s))
	}
	if flags.Changed("database") {
		s, _ := flags.GetString("database")
		res = append(res, config.OptMongoDatabase(s))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	if flags.Changed("strict") {
		b, _ := flags.GetBool("strict")
		res = append(res, config.OptScanStrict(b))
	}
	if flags.Changed("base-package") {
		s, _ := flags.GetString("base-package")
		res = append(res, config.OptScanBasePackage(s))
	}
	return res
}
