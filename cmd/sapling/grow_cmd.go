package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sapling"
)

type growCmdConfig struct {
	inputConfig
	tuneMethod string
	tuneParam  int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a classification tree from a dataset",
		Long:  `Grow a classification tree from a labeled dataset, optionally pruning it against a tuning partition split out of the data.`,
		Run: func(cmd *cobra.Command, args []string) {
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
			config.Logger().Infof("Growing tree from a dataset with %d examples, %d labels and %d feature values...", ds.Size(), ds.Labels().Len(), ds.FeatureValues().Len())
			t, err := sapling.BuildTunedTree(ds, method, config.tuneParam)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(3)
			}
			config.Logger().Infof("Done: %d nodes, %d taking part in classification", t.Nodes(), t.EffectiveNodes())
			fmt.Print(t)
		},
	}
	config.registerFlags(cmd)
	registerTuningFlags(cmd, &config.tuneMethod, &config.tuneParam)
	return cmd
}

func registerTuningFlags(cmd *cobra.Command, method *string, param *int) {
	cmd.PersistentFlags().StringVar(method, "tune", "stride", "how to split tuning data out of the dataset, the following are valid: none, stride, size")
	cmd.PersistentFlags().IntVar(param, "tune-param", 4, "the stride with which to pluck out tuning examples (stride tuning) or the desired tuning partition size (size tuning)")
}

func parseTuneMethod(method string) (sapling.TuneMethod, error) {
	switch method {
	case "none":
		return sapling.TuneByNone, nil
	case "stride":
		return sapling.TuneByStride, nil
	case "size":
		return sapling.TuneBySize, nil
	}
	return sapling.TuneByNone, fmt.Errorf("unknown tuning method %q", method)
}
