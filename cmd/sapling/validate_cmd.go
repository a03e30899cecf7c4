package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sapling"
)

type validateCmdConfig struct {
	inputConfig
	foldSize   int
	tuneMethod string
	tuneParam  int
}

func validateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &validateCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Estimate tree accuracy by cross-validation",
		Long:  `Estimate the accuracy of tuned classification trees over a dataset by n-fold cross-validation: every contiguous fold is held out in turn, a tuned tree is grown from the rest and scored against it.`,
		Run: func(cmd *cobra.Command, args []string) {
			if config.foldSize < 1 {
				fmt.Fprintln(os.Stderr, "fold-size must be 1 or greater")
				os.Exit(1)
			}
			method, err := parseTuneMethod(config.tuneMethod)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ds, err := config.readDataset(config.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			folds := ds.Size() - config.foldSize
			config.Logger().Infof("Cross-validating over %d folds of %d examples...", folds, config.foldSize)
			accuracy, err := sapling.CrossValidate(config.Context(), ds, config.foldSize, method, config.tuneParam)
			if err != nil {
				fmt.Fprintf(os.Stderr, "cross-validating: %v\n", err)
				os.Exit(3)
			}
			fmt.Printf("%f estimated accuracy over %d folds\n", accuracy, folds)
		},
	}
	config.registerFlags(cmd)
	registerTuningFlags(cmd, &config.tuneMethod, &config.tuneParam)
	cmd.Flags().IntVarP(&(config.foldSize), "fold-size", "n", 1, "number of contiguous examples held out as each cross-validation fold")
	return cmd
}
