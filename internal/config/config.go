package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohmanhakim/docs-toc/pkg/hashutil"
	"github.com/rohmanhakim/docs-toc/pkg/set"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//===============
	// Extraction
	//===============
	// Heading levels that take part in the table of contents
	levels set.Set[int]
	// Nest list items by heading level instead of a flat list
	hierarchical bool
	// Prefix flat list items with their 1-based position
	numbered bool
	// Lowercase generated anchors
	lowercase bool
	// Join anchor words with "-" instead of "_"
	hyphenate bool
	// Heading scanner implementation
	scanner ScannerKind

	//===============
	// Injection
	//===============
	// Container placement when the content has no <!--TOC--> marker
	position Position
	// Fewer surviving headings than this and no container is inserted
	minHeadings int
	// Container title. %PAGE_TITLE% and %PAGE_NAME% are replaced with the page title
	headingText string
	showHeading bool
	wrapping    Wrapping
	theme       Theme
	// Extra class added to the container
	customClass string
	bullets     bool
	// Anchor the headings but leave the container out
	widgetOnly bool

	//===============
	// Output
	//===============
	// Directory that receives rewritten pages and TOC fragments
	outputDir string
	// Whether the program simulates what it would do without writing files
	dryRun bool
	// Also write the TOC as Markdown
	exportMarkdown bool
	// Check the rewritten page for duplicate ids and dangling TOC links
	verify   bool
	hashAlgo hashutil.HashAlgo
}

type configDTO struct {
	Levels       []int  `json:"levels,omitempty" yaml:"levels,omitempty"`
	Hierarchical *bool  `json:"hierarchical,omitempty" yaml:"hierarchical,omitempty"`
	Numbered     *bool  `json:"numbered,omitempty" yaml:"numbered,omitempty"`
	Lowercase    *bool  `json:"lowercase,omitempty" yaml:"lowercase,omitempty"`
	Hyphenate    *bool  `json:"hyphenate,omitempty" yaml:"hyphenate,omitempty"`
	Scanner      string `json:"scanner,omitempty" yaml:"scanner,omitempty"`

	Position    string `json:"position,omitempty" yaml:"position,omitempty"`
	MinHeadings *int   `json:"minHeadings,omitempty" yaml:"minHeadings,omitempty"`
	HeadingText string `json:"headingText,omitempty" yaml:"headingText,omitempty"`
	ShowHeading *bool  `json:"showHeading,omitempty" yaml:"showHeading,omitempty"`
	Wrapping    string `json:"wrapping,omitempty" yaml:"wrapping,omitempty"`
	Theme       string `json:"theme,omitempty" yaml:"theme,omitempty"`
	CustomClass string `json:"customClass,omitempty" yaml:"customClass,omitempty"`
	Bullets     *bool  `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	WidgetOnly  *bool  `json:"widgetOnly,omitempty" yaml:"widgetOnly,omitempty"`

	OutputDir      string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	DryRun         bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	ExportMarkdown bool   `json:"exportMarkdown,omitempty" yaml:"exportMarkdown,omitempty"`
	Verify         bool   `json:"verify,omitempty" yaml:"verify,omitempty"`
	HashAlgo       string `json:"hashAlgo,omitempty" yaml:"hashAlgo,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg := WithDefault()

	// Levels can be empty - NormalizeLevels falls back to all six
	if dto.Levels != nil {
		cfg.WithLevels(dto.Levels)
	}
	if dto.Hierarchical != nil {
		cfg.WithHierarchical(*dto.Hierarchical)
	}
	if dto.Numbered != nil {
		cfg.WithNumbered(*dto.Numbered)
	}
	if dto.Lowercase != nil {
		cfg.WithLowercase(*dto.Lowercase)
	}
	if dto.Hyphenate != nil {
		cfg.WithHyphenate(*dto.Hyphenate)
	}
	if dto.Scanner != "" {
		cfg.WithScanner(ScannerKind(strings.ToLower(dto.Scanner)))
	}

	if dto.Position != "" {
		cfg.WithPosition(Position(strings.ToLower(dto.Position)))
	}
	if dto.MinHeadings != nil {
		cfg.WithMinHeadings(*dto.MinHeadings)
	}
	if dto.HeadingText != "" {
		cfg.WithHeadingText(dto.HeadingText)
	}
	if dto.ShowHeading != nil {
		cfg.WithShowHeading(*dto.ShowHeading)
	}
	if dto.Wrapping != "" {
		cfg.WithWrapping(Wrapping(strings.ToLower(dto.Wrapping)))
	}
	if dto.Theme != "" {
		cfg.WithTheme(Theme(strings.ToLower(dto.Theme)))
	}
	cfg.WithCustomClass(dto.CustomClass)
	if dto.Bullets != nil {
		cfg.WithBullets(*dto.Bullets)
	}
	if dto.WidgetOnly != nil {
		cfg.WithWidgetOnly(*dto.WidgetOnly)
	}

	if dto.OutputDir != "" {
		cfg.WithOutputDir(dto.OutputDir)
	}
	cfg.WithDryRun(dto.DryRun)
	cfg.WithExportMarkdown(dto.ExportMarkdown)
	cfg.WithVerify(dto.Verify)
	if dto.HashAlgo != "" {
		cfg.WithHashAlgo(hashutil.HashAlgo(strings.ToLower(dto.HashAlgo)))
	}

	return cfg.Build()
}

// WithConfigFile loads a YAML (.yaml, .yml) or JSON file on top of the
// defaults. Keys the schema does not know are rejected.
func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}

	cfgDTO, err := decodeDTO(path, configContent)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

func decodeDTO(path string, content []byte) (configDTO, error) {
	dto := configDTO{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		// an empty document leaves every default in place
		if err := decoder.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
			return configDTO{}, err
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&dto); err != nil {
			return configDTO{}, err
		}
	}
	return dto, nil
}

// WithDefault creates a new Config holding the default value of every field.
func WithDefault() *Config {
	defaultConfig := Config{
		levels:         NormalizeLevels(nil),
		hierarchical:   true,
		numbered:       true,
		lowercase:      false,
		hyphenate:      false,
		scanner:        ScannerPattern,
		position:       PositionAfterFirstHeading,
		minHeadings:    4,
		headingText:    "Contents",
		showHeading:    true,
		wrapping:       WrappingNone,
		theme:          ThemeGrey,
		bullets:        false,
		widgetOnly:     false,
		outputDir:      "output",
		dryRun:         false,
		exportMarkdown: false,
		verify:         false,
		hashAlgo:       hashutil.HashAlgoSHA256,
	}
	return &defaultConfig
}

// WithLevels replaces the included heading levels. Out of range values are
// dropped; an empty list selects every level.
func (c *Config) WithLevels(levels []int) *Config {
	c.levels = NormalizeLevels(levels)
	return c
}

func (c *Config) WithHierarchical(hierarchical bool) *Config {
	c.hierarchical = hierarchical
	return c
}

func (c *Config) WithNumbered(numbered bool) *Config {
	c.numbered = numbered
	return c
}

func (c *Config) WithLowercase(lowercase bool) *Config {
	c.lowercase = lowercase
	return c
}

func (c *Config) WithHyphenate(hyphenate bool) *Config {
	c.hyphenate = hyphenate
	return c
}

func (c *Config) WithScanner(scanner ScannerKind) *Config {
	c.scanner = scanner
	return c
}

func (c *Config) WithPosition(position Position) *Config {
	c.position = position
	return c
}

func (c *Config) WithMinHeadings(minHeadings int) *Config {
	c.minHeadings = minHeadings
	return c
}

func (c *Config) WithHeadingText(text string) *Config {
	c.headingText = text
	return c
}

func (c *Config) WithShowHeading(show bool) *Config {
	c.showHeading = show
	return c
}

func (c *Config) WithWrapping(wrapping Wrapping) *Config {
	c.wrapping = wrapping
	return c
}

func (c *Config) WithTheme(theme Theme) *Config {
	c.theme = theme
	return c
}

func (c *Config) WithCustomClass(class string) *Config {
	c.customClass = strings.TrimSpace(class)
	return c
}

func (c *Config) WithBullets(bullets bool) *Config {
	c.bullets = bullets
	return c
}

func (c *Config) WithWidgetOnly(widgetOnly bool) *Config {
	c.widgetOnly = widgetOnly
	return c
}

func (c *Config) WithOutputDir(outputDir string) *Config {
	c.outputDir = outputDir
	return c
}

func (c *Config) WithDryRun(dryRun bool) *Config {
	c.dryRun = dryRun
	return c
}

func (c *Config) WithExportMarkdown(exportMarkdown bool) *Config {
	c.exportMarkdown = exportMarkdown
	return c
}

func (c *Config) WithVerify(verify bool) *Config {
	c.verify = verify
	return c
}

func (c *Config) WithHashAlgo(algo hashutil.HashAlgo) *Config {
	c.hashAlgo = algo
	return c
}

func (c *Config) Build() (Config, error) {
	if _, err := ParseScanner(string(c.scanner)); err != nil {
		return Config{}, err
	}
	if _, err := ParsePosition(string(c.position)); err != nil {
		return Config{}, err
	}
	if _, err := ParseWrapping(string(c.wrapping)); err != nil {
		return Config{}, err
	}
	if _, err := ParseTheme(string(c.theme)); err != nil {
		return Config{}, err
	}
	if c.minHeadings < 0 {
		return Config{}, fmt.Errorf("%w: minHeadings cannot be negative", ErrInvalidConfig)
	}
	if _, err := hashutil.ParseHashAlgo(string(c.hashAlgo)); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	if c.levels == nil {
		c.levels = NormalizeLevels(nil)
	}
	return *c, nil
}

// Levels returns a copy of the included heading levels.
func (c Config) Levels() set.Set[int] {
	return c.levels.Clone()
}

// LevelList returns the included heading levels in ascending order.
func (c Config) LevelList() []int {
	return set.Sorted(c.levels)
}

func (c Config) Hierarchical() bool {
	return c.hierarchical
}

func (c Config) Numbered() bool {
	return c.numbered
}

func (c Config) Lowercase() bool {
	return c.lowercase
}

func (c Config) Hyphenate() bool {
	return c.hyphenate
}

func (c Config) Scanner() ScannerKind {
	return c.scanner
}

func (c Config) Position() Position {
	return c.position
}

func (c Config) MinHeadings() int {
	return c.minHeadings
}

func (c Config) HeadingText() string {
	return c.headingText
}

func (c Config) ShowHeading() bool {
	return c.showHeading
}

func (c Config) Wrapping() Wrapping {
	return c.wrapping
}

func (c Config) Theme() Theme {
	return c.theme
}

func (c Config) CustomClass() string {
	return c.customClass
}

func (c Config) Bullets() bool {
	return c.bullets
}

func (c Config) WidgetOnly() bool {
	return c.widgetOnly
}

func (c Config) OutputDir() string {
	return c.outputDir
}

func (c Config) DryRun() bool {
	return c.dryRun
}

func (c Config) ExportMarkdown() bool {
	return c.exportMarkdown
}

func (c Config) Verify() bool {
	return c.verify
}

func (c Config) HashAlgo() hashutil.HashAlgo {
	return c.hashAlgo
}
