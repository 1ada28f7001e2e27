package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/forest"
)

type splitCmdConfig struct {
	*rootCmdConfig
	setInput           string
	trainingOutput     string
	validationOutput   string
	testOutput         string
	trainingFraction   float64
	validationFraction float64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into training, validation and test sets",
		Long:  `Shuffle a set and split it into a training, a validation and a test set`,
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
			d, err := readDataset(ctx, cfg, config.setInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			r, seed := random(cfg)
			parts := dataset.Split(d.Examples, r, config.trainingFraction, config.validationFraction)
			outputs := []string{config.trainingOutput, config.validationOutput, config.testOutput}
			for i, output := range outputs {
				logger.Debug("writing split", "location", output, "examples", len(parts[i]), "seed", seed)
				if err = writeDataset(ctx, cfg, output, d.WithExamples(parts[i])); err != nil {
					fmt.Fprintf(os.Stderr, "writing %s: %v\n", output, err)
					os.Exit(3 + i)
				}
			}
			logger.Info("split set", "training", len(parts[0]), "validation", len(parts[1]), "test", len(parts[2]))
		},
	}
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", locationHelp+" with the set to split (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVar(&(config.trainingOutput), "training-output", "", locationHelp+" to write the training set to (required)")
	cmd.Flags().StringVar(&(config.validationOutput), "validation-output", "", locationHelp+" to write the validation set to (required)")
	cmd.Flags().StringVar(&(config.testOutput), "test-output", "", locationHelp+" to write the test set to (required)")
	cmd.Flags().Float64Var(&(config.trainingFraction), "training-fraction", forest.TrainingFraction, "fraction of the examples that go to the training set")
	cmd.Flags().Float64Var(&(config.validationFraction), "validation-fraction", forest.ValidationFraction, "fraction of the examples that go to the validation set")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.trainingOutput == "" {
		return fmt.Errorf("required training-output flag was not set")
	}
	if scc.validationOutput == "" {
		return fmt.Errorf("required validation-output flag was not set")
	}
	if scc.testOutput == "" {
		return fmt.Errorf("required test-output flag was not set")
	}
	if scc.trainingFraction < 0 || scc.validationFraction < 0 || scc.trainingFraction+scc.validationFraction > 1 {
		return fmt.Errorf("training and validation fractions must be positive and add up to 1 at most, got %v and %v", scc.trainingFraction, scc.validationFraction)
	}
	return nil
}
