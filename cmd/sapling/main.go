package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose bool
	logger  *zap.SugaredLogger
	ctx     context.Context
	cancel  context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sapling",
		Short: "sapling is a tool to induce classification trees",
		Long:  `A tool to induce classification trees from labeled data, prune them against held-out tuning data, and estimate their accuracy by cross-validation`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), growCmd(config), validateCmd(config), classifyCmd(config), splitCmd(config))
	return rootCmd
}

// Logger returns the command's leveled logger: a development zap
// logger when the verbose flag is set, a no-op logger otherwise.
func (rcc *rootCmdConfig) Logger() *zap.SugaredLogger {
	if rcc.logger == nil {
		l := zap.NewNop()
		if rcc.verbose {
			if dl, err := zap.NewDevelopment(); err == nil {
				l = dl
			}
		}
		rcc.logger = l.Sugar()
	}
	return rcc.logger
}

func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancel = context.WithCancel(context.Background())
	}
	return rcc.ctx
}

func (rcc *rootCmdConfig) ContextCancelFunc() context.CancelFunc {
	rcc.Context()
	return rcc.cancel
}
