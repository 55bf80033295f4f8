// Command cjkfmt checks and formats prose that mixes CJK and Latin
// scripts, per spec.md §6.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sgryjp/cjkfmt/check"
	"github.com/sgryjp/cjkfmt/format"
	"github.com/sgryjp/cjkfmt/internal/cjkconfig"
	"github.com/sgryjp/cjkfmt/internal/parsedoc"
	"github.com/sgryjp/cjkfmt/internal/render"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cjkfmt",
		Short:         "Lint and format prose mixing CJK and Latin scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Int("max-width", 0, "maximum line width in East Asian columns (default 80)")
	root.PersistentFlags().String("color", "auto", "colorize output: always, never, or auto")

	root.AddCommand(newCheckCommand(), newFormatCommand())
	return root
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Report diagnostics without modifying files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			mode, err := colorMode(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), cfg, mode, args)
		},
	}
}

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format [files...]",
		Short: "Rewrite files, wrapping overlong lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runFormat(cmd.OutOrStdout(), cfg, args)
		},
	}
}

func loadConfig(cmd *cobra.Command) (cjkconfig.Config, error) {
	overrides := viper.New()
	if maxWidth, _ := cmd.Flags().GetInt("max-width"); maxWidth != 0 {
		overrides.Set("max_width", maxWidth)
	}
	return cjkconfig.Load(overrides)
}

func colorMode(cmd *cobra.Command) (render.ColorMode, error) {
	value, _ := cmd.Flags().GetString("color")
	switch value {
	case "always":
		return render.ColorAlways, nil
	case "never":
		return render.ColorNever, nil
	case "auto":
		if isatty.IsTerminal(os.Stdout.Fd()) {
			return render.ColorAlways, nil
		}
		return render.ColorNever, nil
	default:
		return 0, fmt.Errorf("unrecognized --color value %q", value)
	}
}

func runCheck(w io.Writer, cfg cjkconfig.Config, mode render.ColorMode, filenames []string) error {
	for _, content := range inputFiles(filenames) {
		grammar := parsedoc.GrammarForExtension(filepath.Ext(content.name))
		diagnostics, err := check.File(cfg, content.name, grammar, content.text)
		if err != nil {
			logger.Warn("falling back to plain text", "file", displayName(content.name), "err", err)
		}
		for _, d := range diagnostics {
			fmt.Fprintln(w, render.Diagnostic(d, mode))
		}
	}
	return nil
}

func runFormat(w io.Writer, cfg cjkconfig.Config, filenames []string) error {
	for _, content := range inputFiles(filenames) {
		out, err := format.File(cfg, content.text)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
	}
	return nil
}

type fileContent struct {
	name string // empty for standard input
	text string
}

// inputFiles reads every named file, or standard input if filenames is
// empty, per spec.md §6.
func inputFiles(filenames []string) []fileContent {
	if len(filenames) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal("failed to read standard input", "err", err)
		}
		return []fileContent{{name: "", text: string(data)}}
	}

	contents := make([]fileContent, 0, len(filenames))
	for _, name := range filenames {
		data, err := os.ReadFile(name)
		if err != nil {
			logger.Fatal("failed to read file", "file", name, "err", err)
		}
		contents = append(contents, fileContent{name: name, text: string(data)})
	}
	return contents
}

func displayName(name string) string {
	if name == "" {
		return "<stdin>"
	}
	return name
}
