package main

import (
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Almanac - map seeds to locations through range tables",
	Long: `Almanac reads a seed list followed by "<name> map:" blocks of
"dest source length" triples, chains the blocks into a pipeline and reports
the lowest location reached by any seed (part one) or by any seed inside the
listed seed ranges (part two).

Use -v=1 to log how long each stage takes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// klog registers its flags on a Go FlagSet; mount them on cobra.
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
