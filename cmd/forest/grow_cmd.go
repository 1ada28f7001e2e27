package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/viggieG/ID3-Random-Forest/dataset"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput string
	output    string
	impute    bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a random forest from a set of data",
		Long: `Grow a random forest from a set of data to predict its class.
The data is shuffled and split into a training half, a validation quarter
and a test quarter. The forest is grown on the training half and its accuracy
on the test quarter is reported.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger, err := config.load(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			d, err := readDataset(ctx, cfg, config.dataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			if config.impute {
				d = dataset.Impute(d)
				logger.Debug("imputed missing values", "examples", d.Count())
			}
			r, seed := random(cfg)
			g := cfg.Grower()
			g.Logger = logger
			logger.Info("growing forest", "examples", d.Count(), "attributes", len(d.Schema.Attributes), "trees", cfg.Trees, "seed", seed)
			accuracy, f, err := g.Train(ctx, d, r)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the forest: %v\n", err)
				os.Exit(3)
			}
			id, err := saveForest(ctx, cfg, config.output, f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "saving the forest: %v\n", err)
				os.Exit(4)
			}
			rows := []table.Row{
				{"Trees", len(f.Members)},
				{"Nodes", f.Size()},
				{"Seed", seed},
				{"Test accuracy", fmt.Sprintf("%.4f", accuracy)},
			}
			if id != "" {
				rows = append(rows, table.Row{"Redis ID", id})
			}
			renderSummary(os.Stderr, "Forest", rows...)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", locationHelp+" with data to grow the forest from (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the forest will be written in JSON format (defaults to STDOUT, ignored when --redis is set)")
	cmd.Flags().BoolVar(&(config.impute), "impute", false, "replace missing values with the most common value of their attribute before growing")
	return cmd
}
