/*
Command forest grows random forests of ID3 decision trees from datasets,
tests them and uses them to make predictions.
*/
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	cfgFile string
}

func main() {
	if err := cliParser().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forest",
		Short: "forest is a tool to grow random forests of decision trees",
		Long:  `A tool to grow ID3 decision trees and random forests of them from your data, test them, and use them to make predictions`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the progress of every step")
	rootCmd.PersistentFlags().StringVar(&(config.cfgFile), "config", "", "path to a YAML configuration file")
	addConfigFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		treeCmd(config),
		testCmd(config),
		predictCmd(config),
		splitCmd(config),
		setCmd(config),
	)
	return rootCmd
}

/*
load returns the configuration for the command, layered over the defaults,
the configuration file, the environment and the flags of the command, with
a logger set up for it.
*/
func (rcc *rootCmdConfig) load(cmd *cobra.Command) (*Config, *slog.Logger, error) {
	cfg, err := LoadConfig(rcc.cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(os.Stderr, cfg.Verbose), nil
}
