package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rohmanhakim/docs-toc/internal/build"
	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/rohmanhakim/docs-toc/internal/metadata"
	"github.com/rohmanhakim/docs-toc/pkg/failure"
	"github.com/rohmanhakim/docs-toc/pkg/hashutil"
	"github.com/rohmanhakim/docs-toc/pkg/set"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	cfgFile        string
	levels         string
	hierarchical   bool
	numbered       bool
	lowercase      bool
	hyphenate      bool
	position       string
	minHeadings    int
	title          string
	widgetOnly     bool
	scanner        string
	outputDir      string
	dryRun         bool
	exportMarkdown bool
	verifyOutput   bool
	hashAlgo       string
	verbose        bool

	// names of the flags given on the command line; only these override the
	// config file
	changedFlags = set.New[string]()
)

// ErrFilesFailed is returned when at least one input page could not be
// processed.
var ErrFilesFailed = errors.New("some files failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docs-toc [flags] FILE...",
	Short: "Generate a table of contents for HTML and Markdown pages.",
	Long: `docs-toc scans a page for h1-h6 headings, gives every included heading
a unique anchor and inserts a table of contents linking to them.

HTML files are rewritten as they are. Markdown files (.md, .markdown) are
rendered to HTML first. Results go to the output directory as <name>.html,
plus <name>.toc.html and, with --markdown, <name>.toc.md.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			changedFlags.Add(f.Name)
		})

		cfg, err := InitConfigWithError()
		if err != nil {
			return err
		}
		return Run(cfg, args, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), build.Banner("docs-toc"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug events")

	rootCmd.Flags().StringVar(&cfgFile, "config-file", "", "config file path, YAML or JSON (e.g., /home/myuser/toc.yaml)")
	rootCmd.Flags().StringVar(&levels, "levels", "", "heading levels to include, e.g. 2,3,4 or h2,h3 (default all)")
	rootCmd.Flags().BoolVar(&hierarchical, "hierarchical", true, "nest the table of contents by heading level")
	rootCmd.Flags().BoolVar(&numbered, "numbered", true, "number items of a flat table of contents")
	rootCmd.Flags().BoolVar(&lowercase, "lowercase", false, "lowercase generated anchors")
	rootCmd.Flags().BoolVar(&hyphenate, "hyphenate", false, "join anchor words with - instead of _")
	rootCmd.Flags().StringVar(&position, "position", "", "where the table of contents goes: before-first-heading, after-first-heading, top, bottom")
	rootCmd.Flags().IntVar(&minHeadings, "min-headings", 0, "minimum number of headings before a table of contents is inserted")
	rootCmd.Flags().StringVar(&title, "title", "", "table of contents heading text; %PAGE_TITLE% and %PAGE_NAME% are replaced")
	rootCmd.Flags().BoolVar(&widgetOnly, "widget-only", false, "add heading anchors without inserting a table of contents")
	rootCmd.Flags().StringVar(&scanner, "scanner", "", "heading scanner: pattern or token")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "output", "directory the rewritten pages are written to")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "process pages without writing output")
	rootCmd.Flags().BoolVar(&exportMarkdown, "markdown", false, "also write the table of contents as Markdown")
	rootCmd.Flags().BoolVar(&verifyOutput, "verify", false, "check rewritten pages for duplicate ids and dangling links")
	rootCmd.Flags().StringVar(&hashAlgo, "hash-algo", "", "content hash recorded for written files: sha256 or blake3")

	rootCmd.AddCommand(versionCmd)
}

// InitConfig builds the configuration or exits the process.
func InitConfig() config.Config {
	cfg, err := InitConfigWithError()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return cfg
}

// InitConfigWithError starts from the config file when one is given, or
// from the defaults, and applies every flag that was set on the command line.
// This makes it easier to test error cases.
func InitConfigWithError() (config.Config, error) {
	configBuilder := config.WithDefault()

	if cfgFile != "" {
		log.Debug().Str("path", cfgFile).Msg("loading config file")
		fileCfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("error initializing config from file: %w", err)
		}
		configBuilder = &fileCfg
	}

	if changedFlags.Contains("levels") {
		parsed, err := config.ParseLevels(levels)
		if err != nil {
			return config.Config{}, err
		}
		configBuilder = configBuilder.WithLevels(parsed)
	}

	if changedFlags.Contains("hierarchical") {
		configBuilder = configBuilder.WithHierarchical(hierarchical)
	}

	if changedFlags.Contains("numbered") {
		configBuilder = configBuilder.WithNumbered(numbered)
	}

	if changedFlags.Contains("lowercase") {
		configBuilder = configBuilder.WithLowercase(lowercase)
	}

	if changedFlags.Contains("hyphenate") {
		configBuilder = configBuilder.WithHyphenate(hyphenate)
	}

	if changedFlags.Contains("position") {
		parsed, err := config.ParsePosition(position)
		if err != nil {
			return config.Config{}, err
		}
		configBuilder = configBuilder.WithPosition(parsed)
	}

	if changedFlags.Contains("min-headings") {
		configBuilder = configBuilder.WithMinHeadings(minHeadings)
	}

	if changedFlags.Contains("title") {
		configBuilder = configBuilder.WithHeadingText(title)
	}

	if changedFlags.Contains("widget-only") {
		configBuilder = configBuilder.WithWidgetOnly(widgetOnly)
	}

	if changedFlags.Contains("scanner") {
		parsed, err := config.ParseScanner(scanner)
		if err != nil {
			return config.Config{}, err
		}
		configBuilder = configBuilder.WithScanner(parsed)
	}

	if changedFlags.Contains("output-dir") && outputDir != "" {
		configBuilder = configBuilder.WithOutputDir(outputDir)
	}

	if changedFlags.Contains("dry-run") {
		configBuilder = configBuilder.WithDryRun(dryRun)
	}

	if changedFlags.Contains("markdown") {
		configBuilder = configBuilder.WithExportMarkdown(exportMarkdown)
	}

	if changedFlags.Contains("verify") {
		configBuilder = configBuilder.WithVerify(verifyOutput)
	}

	if changedFlags.Contains("hash-algo") {
		parsed, err := hashutil.ParseHashAlgo(hashAlgo)
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: %s", config.ErrInvalidConfig, err.Error())
		}
		configBuilder = configBuilder.WithHashAlgo(parsed)
	}

	cfg, err := configBuilder.Build()
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Run processes every path with cfg and prints one summary line per page to
// out. A failing page does not stop the others.
func Run(cfg config.Config, paths []string, out io.Writer) error {
	recorder := metadata.NewRecorder(log.Logger)
	p := newPipeline(cfg, &recorder)

	failed := 0
	for _, path := range paths {
		summary, err := p.process(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: failed: %s\n", path, err)
			log.Debug().
				Str("path", path).
				Bool("recoverable", failure.IsRecoverable(err)).
				Msg("page failed")
			continue
		}
		fmt.Fprintln(out, summary.String())
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(paths))
	}
	return nil
}

func ResetFlags() {
	cfgFile = ""
	levels = ""
	hierarchical = true
	numbered = true
	lowercase = false
	hyphenate = false
	position = ""
	minHeadings = 0
	title = ""
	widgetOnly = false
	scanner = ""
	outputDir = ""
	dryRun = false
	exportMarkdown = false
	verifyOutput = false
	hashAlgo = ""
	verbose = false
	changedFlags = set.New[string]()
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetLevelsForTest(value string) {
	levels = value
	changedFlags.Add("levels")
}

func SetHierarchicalForTest(value bool) {
	hierarchical = value
	changedFlags.Add("hierarchical")
}

func SetNumberedForTest(value bool) {
	numbered = value
	changedFlags.Add("numbered")
}

func SetLowercaseForTest(value bool) {
	lowercase = value
	changedFlags.Add("lowercase")
}

func SetHyphenateForTest(value bool) {
	hyphenate = value
	changedFlags.Add("hyphenate")
}

func SetPositionForTest(value string) {
	position = value
	changedFlags.Add("position")
}

func SetMinHeadingsForTest(value int) {
	minHeadings = value
	changedFlags.Add("min-headings")
}

func SetTitleForTest(value string) {
	title = value
	changedFlags.Add("title")
}

func SetWidgetOnlyForTest(value bool) {
	widgetOnly = value
	changedFlags.Add("widget-only")
}

func SetScannerForTest(value string) {
	scanner = value
	changedFlags.Add("scanner")
}

func SetOutputDirForTest(dir string) {
	outputDir = dir
	changedFlags.Add("output-dir")
}

func SetDryRunForTest(dry bool) {
	dryRun = dry
	changedFlags.Add("dry-run")
}

func SetMarkdownForTest(value bool) {
	exportMarkdown = value
	changedFlags.Add("markdown")
}

func SetVerifyForTest(value bool) {
	verifyOutput = value
	changedFlags.Add("verify")
}

func SetHashAlgoForTest(value string) {
	hashAlgo = value
	changedFlags.Add("hash-algo")
}
