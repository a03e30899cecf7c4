package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sapling/dataset"
	csvset "sapling/dataset/csv"
	"sapling/domain/metadata"
)

type splitCmdConfig struct {
	inputConfig
	stride      int
	output      string
	splitOutput string
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a dataset by stride into two CSV files",
		Long:  `Split a dataset into two CSV files: the examples on the given stride and the remainder. Useful to set aside a tuning or testing partition before growing.`,
		Run: func(cmd *cobra.Command, args []string) {
			if config.splitOutput == "" {
				fmt.Fprintln(os.Stderr, "required split-output flag was not set")
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
			onStride, offStride, err := dataset.SplitByStride(ds, config.stride)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logger().Infof("Split %d examples into %d on stride %d and %d off it", ds.Size(), onStride.Size(), config.stride, offStride.Size())
			if err := writeCSVFile(config.output, offStride, md); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			if err := writeCSVFile(config.splitOutput, onStride, md); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	config.registerFlags(cmd)
	cmd.Flags().IntVar(&(config.stride), "stride", 4, "stride on which to pluck examples out into the split output")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file for the off-stride examples (defaults to STDOUT)")
	cmd.Flags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV file for the on-stride examples (required)")
	return cmd
}

func writeCSVFile(filepath string, ds dataset.Dataset[string, string], md *metadata.Metadata) error {
	f := os.Stdout
	if filepath != "" {
		var err error
		f, err = os.Create(filepath)
		if err != nil {
			return fmt.Errorf("creating %s: %v", filepath, err)
		}
		defer f.Close()
	}
	return csvset.WriteDataset(f, ds, md)
}
