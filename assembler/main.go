package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/xiaobogaga/hackasm/assembler/internal"
)

// a simple program accepts a input assemble code file supported by hack assemble language and transforms
// the content to the corresponding hack machine language.

var (
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "assembler input.asm",
	Short: "Translate hack assembly into hack machine code",
	Long: `Assembler reads a hack assembly file and writes the hack machine code as text,
one 16 character binary instruction per line. The output defaults to the input
path with a .hack extension.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "the output hack binary code file path")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "whether print all parsed commands and symbols")
	// glog registers -v, -logtostderr and friends on the go flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func run(inputPath string) error {
	if outputPath == "" {
		outputPath = internal.DefaultOutputPath(inputPath)
	}
	glog.V(1).Infof("assembler: %s -> %s", inputPath, outputPath)
	result, err := internal.AssembleFile(inputPath, outputPath)
	if err != nil {
		return err
	}
	if verbose {
		for _, command := range result.Commands {
			fmt.Fprintln(os.Stderr, command)
		}
		pp.Fprintln(os.Stderr, result.Symbols.Symbols())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		glog.Exitf("assembly failed: %v", err)
	}
	glog.Flush()
}
