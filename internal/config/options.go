package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rohmanhakim/docs-toc/pkg/set"
)

const (
	minLevel = 1
	maxLevel = 6
)

// Position is where the table of contents container goes when the content
// has no <!--TOC--> marker.
type Position string

const (
	PositionBeforeFirstHeading Position = "before-first-heading"
	PositionAfterFirstHeading  Position = "after-first-heading"
	PositionTop                Position = "top"
	PositionBottom             Position = "bottom"
)

var positions = []Position{
	PositionBeforeFirstHeading,
	PositionAfterFirstHeading,
	PositionTop,
	PositionBottom,
}

func ParsePosition(s string) (Position, error) {
	return parseEnum(s, positions, "position")
}

type Wrapping string

const (
	WrappingNone  Wrapping = "none"
	WrappingLeft  Wrapping = "left"
	WrappingRight Wrapping = "right"
)

var wrappings = []Wrapping{WrappingNone, WrappingLeft, WrappingRight}

func ParseWrapping(s string) (Wrapping, error) {
	return parseEnum(s, wrappings, "wrapping")
}

type Theme string

const (
	ThemeGrey        Theme = "grey"
	ThemeLightBlue   Theme = "light-blue"
	ThemeWhite       Theme = "white"
	ThemeBlack       Theme = "black"
	ThemeTransparent Theme = "transparent"
)

var themes = []Theme{ThemeGrey, ThemeLightBlue, ThemeWhite, ThemeBlack, ThemeTransparent}

func ParseTheme(s string) (Theme, error) {
	return parseEnum(s, themes, "theme")
}

// ScannerKind selects the heading scanner implementation.
type ScannerKind string

const (
	ScannerPattern ScannerKind = "pattern"
	ScannerToken   ScannerKind = "token"
)

var scanners = []ScannerKind{ScannerPattern, ScannerToken}

func ParseScanner(s string) (ScannerKind, error) {
	return parseEnum(s, scanners, "scanner")
}

func parseEnum[T ~string](s string, allowed []T, name string) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(allowed, v) {
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, name, s)
}

// ParseLevels reads a comma separated level list such as "2,3,4" or
// "h2,h3". Numbers outside 1-6 are kept here and dropped by
// NormalizeLevels.
func ParseLevels(s string) ([]int, error) {
	var levels []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		field = strings.TrimPrefix(strings.ToLower(field), "h")
		level, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: heading level %q is not a number", ErrInvalidConfig, field)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// NormalizeLevels drops levels outside 1-6 and duplicates. An empty result
// means every level.
func NormalizeLevels(levels []int) set.Set[int] {
	normalized := set.New[int]()
	for _, level := range levels {
		if level >= minLevel && level <= maxLevel {
			normalized.Add(level)
		}
	}
	if normalized.Size() == 0 {
		for level := minLevel; level <= maxLevel; level++ {
			normalized.Add(level)
		}
	}
	return normalized
}
