package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fractalqb/scriptlint"
)

func checkScripts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lnt, err := cfg.Linter()
	if err != nil {
		return err
	}
	lnt.Log = rootCmd.log
	out := cmd.OutOrStdout()
	lnt.OnIssue = func(is *scriptlint.Issue) bool {
		fmt.Fprintln(out, is)
		return false
	}
	rootCmd.log.Debug("run rules",
		zap.Strings("rules", ruleNames(lnt.Rules)),
		zap.String("encoding", cfg.Encoding),
		zap.Int("max-chars", lnt.MaxLineChars),
	)
	n, err := lnt.Files(args[0], args[1])
	if err != nil {
		return err
	}
	report(out, n)
	if cfg.Fail && n > 0 {
		return scriptlint.IssueCount(n)
	}
	return nil
}

func report(w io.Writer, issues int) {
	fmt.Fprintln(w, "Complete!")
	fmt.Fprintf(w, "Total errors encountered: %d\n", issues)
}

// loadConfig reads the config file and overrides its settings with the flags
// given on the command line.
func loadConfig(cmd *cobra.Command) (cfg Config, err error) {
	switch {
	case rootCmd.config != "":
		if cfg, err = LoadConfig(rootCmd.config); err != nil {
			return cfg, err
		}
		rootCmd.log.Debug("loaded config", zap.String("file", rootCmd.config))
	case fileExists(DefaultConfigFile):
		if cfg, err = LoadConfig(DefaultConfigFile); err != nil {
			return cfg, err
		}
		rootCmd.log.Debug("loaded config", zap.String("file", DefaultConfigFile))
	default:
		cfg = DefaultConfig()
	}
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cfg.Encoding = rootCmd.encoding
	}
	if flags.Changed("max-chars") {
		cfg.MaxChars = rootCmd.maxChars
	}
	if flags.Changed("limit") {
		cfg.Limit = rootCmd.limit
	}
	if flags.Changed("enable") {
		cfg.Enable = rootCmd.enable
	}
	if flags.Changed("disable") {
		cfg.Disable = rootCmd.disable
	}
	if flags.Changed("fail") {
		cfg.Fail = rootCmd.fail
	}
	return cfg, nil
}

func ruleNames(rules []*scriptlint.Rule) []string {
	res := make([]string, len(rules))
	for i, r := range rules {
		res[i] = r.Name
	}
	return res
}
