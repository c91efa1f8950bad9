// A command line tool to check translated game scripts
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fractalqb/scriptlint"
)

var rootCmd = struct {
	cobra.Command
	config   string
	encoding string
	maxChars int
	limit    int
	enable   []string
	disable  []string
	fail     bool
	verbose  bool
	log      *zap.Logger
}{
	Command: cobra.Command{
		Use:   "scriptlint [flags] <translated_script> <original_script>",
		Short: "Check a translated script against the original script",
		Long: `Compares the translated script against the original for missing control
characters, uneven byte lines, and other common issues. Each line of the
translated script is checked against the same line of the original script.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
	},
}

func init() {
	rootCmd.RunE = checkScripts
	rootCmd.PersistentPreRunE = setupLog
	rootCmd.PersistentPostRun = func(*cobra.Command, []string) {
		if rootCmd.log != nil {
			_ = rootCmd.log.Sync()
		}
	}
	pfs := rootCmd.PersistentFlags()
	pfs.BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Log diagnostic messages")
	fs := rootCmd.Flags()
	fs.StringVarP(&rootCmd.config, "config", "c", "",
		"Read settings from YAML file (default "+DefaultConfigFile+" if it exists)")
	fs.StringVarP(&rootCmd.encoding, "encoding", "e", "shift-jis",
		"Set the encoding of the script files")
	fs.IntVarP(&rootCmd.maxChars, "max-chars", "m", scriptlint.DefaultMaxLineChars,
		"Set the maximum number of characters of a rendered line")
	fs.IntVarP(&rootCmd.limit, "limit", "l", 0,
		"Stop after this number of issues, 0 means no limit")
	fs.StringSliceVar(&rootCmd.enable, "enable", nil,
		"Only run the named rules")
	fs.StringSliceVar(&rootCmd.disable, "disable", nil,
		"Do not run the named rules")
	fs.BoolVar(&rootCmd.fail, "fail", false,
		"Exit with status 1 if issues were found")
}

func setupLog(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	if rootCmd.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	var err error
	rootCmd.log, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ic scriptlint.IssueCount
		if !errors.As(err, &ic) {
			fmt.Fprintln(os.Stderr, err)
			rootCmd.Usage()
		}
		os.Exit(1)
	}
}
