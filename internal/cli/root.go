package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vrcomputing/readmegen/internal/branding"
	"github.com/vrcomputing/readmegen/internal/config"
	"github.com/vrcomputing/readmegen/internal/readme"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	settings *viper.Viper

	generateCheck  bool
	generateStdout bool
	verbose        bool
)

// errDrift is returned by --check when the ReadMe is out of date.
var errDrift = errors.New("readme is out of date")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` renders ReadMe.md for the QSkinny VS Code extension
from its package.json manifest and the <command>.input/<command>.output snippet
pairs in the doc directory. Paths are relative to --root, which defaults to the
working directory.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bindSettings,
	RunE:              runGenerate,
}

// settingFlags maps setting keys to the persistent flags that override them.
var settingFlags = map[string]string{
	config.KeyRoot:      "root",
	config.KeyManifest:  "manifest",
	config.KeyDocs:      "docs",
	config.KeyOutput:    "output",
	config.KeyImageRoot: "image-root",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("root", "", "Generation root (default: working directory)")
	pf.String("manifest", config.DefaultManifest, "Extension manifest, relative to the root")
	pf.String("docs", config.DefaultDocs, "Directory holding the snippet pairs, relative to the root")
	pf.String("output", config.DefaultOutput, "ReadMe to write, relative to the root")
	pf.String("image-root", branding.ImageRoot(), "Hosted root URL of the linked GIFs")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.Flags().BoolVar(&generateCheck, "check", false, "Report drift against the existing ReadMe without writing it")
	rootCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print the ReadMe instead of writing it")
	rootCmd.MarkFlagsMutuallyExclusive("check", "stdout")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errDrift) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// bindSettings gives every execution a fresh settings instance bound to the
// persistent flags.
func bindSettings(cmd *cobra.Command, args []string) error {
	settings = config.New()
	pf := cmd.Root().PersistentFlags()
	for key, flag := range settingFlags {
		if err := settings.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

// newLogger returns a text logger on w; --verbose lowers the level to Debug.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newGenerator resolves the settings and builds a generator from them.
func newGenerator(cmd *cobra.Command) (*readme.Generator, *config.Settings, error) {
	s, err := config.Load(settings)
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cmd.ErrOrStderr())
	if s.ConfigFile != "" {
		logger.Debug("using settings file", "path", s.ConfigFile)
	}

	g, err := readme.New(readme.Options{
		Root:         s.Root,
		ManifestPath: s.Manifest,
		DocsDir:      s.Docs,
		Output:       s.Output,
		ImageRoot:    s.ImageRoot,
		Logger:       logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return g, s, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g, _, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case generateStdout:
		data, _, err := g.Build()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err

	case generateCheck:
		res, err := g.Check()
		if err != nil {
			return err
		}
		if res.UpToDate {
			fmt.Fprintf(out, "%s is up to date.\n", res.Output)
			return nil
		}
		fmt.Fprint(out, res.Diff)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s is out of date; run '%s' to regenerate it.\n", res.Output, branding.CLIName())
		return errDrift
	}

	res, err := g.Generate()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s (%d commands, %d settings)\n", res.Output, res.Commands, res.Properties)
	return nil
}
