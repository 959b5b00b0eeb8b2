package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danpilch/sysnap/pkg/collectors"
	"github.com/danpilch/sysnap/pkg/collectors/cpu"
	"github.com/danpilch/sysnap/pkg/collectors/hostinfo"
	"github.com/danpilch/sysnap/pkg/collectors/memory"
	"github.com/danpilch/sysnap/pkg/output"
	"github.com/danpilch/sysnap/pkg/snapshot"
	"github.com/danpilch/sysnap/pkg/waitexit"
)

// newRootCmd builds the sysnap command with its flags bound into viper so
// SYSNAP_* environment variables work as overrides.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sysnap",
		Short: "Print a one-shot CPU, memory, and host snapshot",
		Long: `sysnap captures a single snapshot of CPU identity, topology, frequency,
utilization, memory totals, and host metadata, then prints it as a table
or as one JSON object. Metrics the platform cannot answer are reported as
N/A (table) or null (JSON) rather than failing the run.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.Bool("json", false, "emit the snapshot as a JSON object")
	flags.BoolP("full", "f", false, "collect optional, slower fields (usage sample, CPU flags, cache)")
	flags.Bool("verbose", false, "alias for --full")
	flags.Bool("no-color", false, "disable ANSI styling in table output")
	flags.Bool("wait-exit", false, "wait for a keypress before exiting")
	flags.Bool("no-wait-exit", false, "never wait for a keypress before exiting")
	flags.Bool("debug", false, "enable debug logging on stderr")
	cmd.MarkFlagsMutuallyExclusive("wait-exit", "no-wait-exit")

	viper.SetEnvPrefix("SYSNAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	return cmd
}

// run is the straight-line program flow: collect, format, print, wait.
func run(cmd *cobra.Command) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if viper.GetBool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}

	full := viper.GetBool("full") || viper.GetBool("verbose")
	jsonOut := viper.GetBool("json")

	registry := collectors.NewRegistry()
	registry.Register(cpu.New())
	registry.Register(memory.New())
	registry.Register(hostinfo.New())

	gatherer := snapshot.NewGatherer(snapshot.Options{Full: full}, logger)
	snap, err := gatherer.Gather(toGatherList(registry.Collectors()))
	if err != nil {
		return err
	}

	isTTY := stdoutIsTerminal()

	format := output.FormatTable
	if jsonOut {
		format = output.FormatJSON
	}
	formatter := output.NewFormatter(format, cmd.OutOrStdout())
	formatter.SetFull(full)
	formatter.SetColor(!jsonOut && !viper.GetBool("no-color") && isTTY)

	if err := formatter.Render(snap); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	policy := waitexit.Policy{
		Wait:   viper.GetBool("wait-exit"),
		NoWait: viper.GetBool("no-wait-exit"),
	}
	if waitexit.ShouldWait(policy, len(os.Args), isTTY) {
		waitexit.Wait(os.Stdin, cmd.ErrOrStderr())
	}
	return nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// toGatherList adapts registry collectors to the gatherer's interface.
func toGatherList(cs []collectors.Collector) []snapshot.Collector {
	list := make([]snapshot.Collector, len(cs))
	for i, c := range cs {
		list[i] = c
	}
	return list
}
