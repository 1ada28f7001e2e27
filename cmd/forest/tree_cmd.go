package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/forest"
	"github.com/viggieG/ID3-Random-Forest/tree"
	treejson "github.com/viggieG/ID3-Random-Forest/tree/json"
)

type treeCmdConfig struct {
	*rootCmdConfig
	dataInput string
	output    string
	impute    bool
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow a single pruned decision tree from a set of data",
		Long: `Grow a single ID3 decision tree on a training half of the data, prune it
against a validation quarter and report its accuracy on the test quarter
before and after pruning.`,
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
			}
			r, seed := random(cfg)
			parts := dataset.Split(d.Examples, r, forest.TrainingFraction, forest.ValidationFraction)
			logger.Info("growing tree", "training", len(parts[0]), "validation", len(parts[1]), "test", len(parts[2]), "seed", seed)
			b := &tree.Builder{MinimumGain: cfg.MinimumGain}
			n, err := b.Build(ctx, d.WithExamples(parts[0]))
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			pruned := tree.Prune(n, parts[1])
			logger.Debug("pruned tree", "nodes", n.Size(), "pruned", pruned.Size())
			if config.output != "" {
				w, err := os.Create(config.output)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				defer w.Close()
				if err = treejson.WriteJSONTree(pruned, w); err != nil {
					fmt.Fprintf(os.Stderr, "writing the tree: %v\n", err)
					os.Exit(4)
				}
			}
			fmt.Fprintln(os.Stdout, pruned)
			renderSummary(os.Stdout, "Tree",
				table.Row{"Nodes", n.Size(), pruned.Size()},
				table.Row{"Depth", n.Depth(), pruned.Depth()},
				table.Row{"Test accuracy", fmt.Sprintf("%.4f", tree.Accuracy(n, parts[2])), fmt.Sprintf("%.4f", tree.Accuracy(pruned, parts[2]))},
			)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", locationHelp+" with data to grow the tree from (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the pruned tree will be written in JSON format")
	cmd.Flags().BoolVar(&(config.impute), "impute", false, "replace missing values with the most common value of their attribute before growing")
	return cmd
}
