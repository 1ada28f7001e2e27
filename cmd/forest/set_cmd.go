package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viggieG/ID3-Random-Forest/dataset"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput  string
	setOutput string
	impute    bool
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy a set of data between sources",
		Long: `Read a set from a CSV file, a SQLite3 file or a PostgreSQL or MongoDB
database and write it to another of them, optionally imputing missing values`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger, err := config.load(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			d, err := readDataset(ctx, cfg, config.setInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			if config.impute {
				d = dataset.Impute(d)
			}
			if err = writeDataset(ctx, cfg, config.setOutput, d); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			logger.Info("copied set", "examples", d.Count(), "attributes", len(d.Schema.Attributes))
		},
	}
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", locationHelp+" with the set to copy (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", locationHelp+" to write the set to (defaults to STDOUT, as CSV)")
	cmd.Flags().BoolVar(&(config.impute), "impute", false, "replace missing values with the most common value of their attribute")
	return cmd
}
