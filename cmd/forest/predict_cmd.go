package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viggieG/ID3-Random-Forest/dataset/inputsample"
	"github.com/viggieG/ID3-Random-Forest/feature"
	"github.com/viggieG/ID3-Random-Forest/forest"
)

type predictCmdConfig struct {
	*rootCmdConfig
	forestInput string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of an example answering questions",
		Long: `Use the loaded forest to predict the class of an example, reading the
value of every attribute from STDIN. An empty line or ? leaves a value missing.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			cfg, _, err := config.load(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			f, err := loadForest(cmd.Context(), cfg, config.forestInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			features, err := attributeFeatures(cfg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if features == nil {
				features = memberFeatures(f)
			}
			e, err := inputsample.New(os.Stdin, features, inputsample.NewWriterRequester(os.Stdout)).ReadExample()
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading the example: %v\n", err)
				os.Exit(4)
			}
			prediction, err := f.Predict(e)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			fmt.Printf("Predicted class is %s\n", prediction)
		},
	}
	cmd.Flags().StringVarP(&(config.forestInput), "forest", "f", "", "path to a JSON file with the forest to predict with, or its ID when --redis is set (required)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.forestInput == "" {
		return fmt.Errorf("required forest flag was not set")
	}
	return nil
}

/*
memberFeatures returns a feature accepting any value for every attribute
some member of the forest was grown on, in the order they are first found.
*/
func memberFeatures(f *forest.Forest) []feature.Feature {
	seen := make(map[string]bool)
	var features []feature.Feature
	for _, m := range f.Members {
		for _, name := range m.Features {
			if !seen[name] {
				seen[name] = true
				features = append(features, feature.NewDiscreteFeature(name, nil))
			}
		}
	}
	return features
}
