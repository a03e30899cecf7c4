package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sapling"
	"sapling/dataset/csv"
)

type classifyCmdConfig struct {
	inputConfig
	predictInput string
	tuneMethod   string
	tuneParam    int
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify unlabeled records",
		Long:  `Grow a tuned classification tree from a training dataset and print the label it resolves for each unlabeled record of a second, CSV input.`,
		Run: func(cmd *cobra.Command, args []string) {
			method, err := parseTuneMethod(config.tuneMethod)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			md, err := config.metadata()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ds, err := config.readDataset(config.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := sapling.BuildTunedTree(ds, method, config.tuneParam)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			config.Logger().Infof("Reading records to classify from %s...", config.predictInput)
			instances, err := csv.ReadInstancesFromFilePath(config.predictInput, md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			for _, x := range instances {
				fmt.Println(t.Classify(x))
			}
		},
	}
	config.registerFlags(cmd)
	registerTuningFlags(cmd, &config.tuneMethod, &config.tuneParam)
	cmd.Flags().StringVarP(&(config.predictInput), "predict", "p", "", "path to a CSV file with the unlabeled records to classify (defaults to STDIN)")
	return cmd
}
