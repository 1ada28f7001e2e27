package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	dataInput   string
	forestInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a forest",
		Long:  `Test the performance of a forest against a test set of data, reporting its accuracy per class`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			cfg, logger, err := config.load(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			f, err := loadForest(ctx, cfg, config.forestInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			d, err := readDataset(ctx, cfg, config.dataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			logger.Info("testing forest", "trees", len(f.Members), "examples", d.Count())
			results, total := evaluate(f.Predict, d.Examples)
			renderResults(os.Stdout, "Forest accuracy", results, total)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", locationHelp+" with data to test the forest on (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.forestInput), "forest", "f", "", "path to a JSON file with the forest to test, or its ID when --redis is set (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.forestInput == "" {
		return fmt.Errorf("required forest flag was not set")
	}
	return nil
}
