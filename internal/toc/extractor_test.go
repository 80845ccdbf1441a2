package toc_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/rohmanhakim/docs-toc/internal/config"
	"github.com/rohmanhakim/docs-toc/internal/heading"
	"github.com/rohmanhakim/docs-toc/internal/toc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sixLevels = `<h1>One</h1><p>a</p>
<h2>Two</h2><p>b</p>
<h3>Three</h3>
<h4>Four</h4>
<h2>Two again</h2>
<h5>Five</h5>
<h6>Six</h6>
<h3>Three again</h3>`

func TestExtract_ZeroHeadings(t *testing.T) {
	content := "<p>No headings here.</p><div><strong>bold</strong></div>"

	result := toc.NewExtractor(defaultConfig(t)).Extract(content)

	assert.True(t, result.Empty())
	assert.Empty(t, result.Items)
	assert.Empty(t, result.Find())
	assert.Empty(t, result.Replace())
	assert.Equal(t, content, result.Apply(content))
}

func TestExtract_EmptyContent(t *testing.T) {
	result := toc.NewExtractor(defaultConfig(t)).Extract("")

	assert.True(t, result.Empty())
	assert.Nil(t, result.Headings)
}

func TestExtract_OnlyBlankHeadings(t *testing.T) {
	result := toc.NewExtractor(defaultConfig(t)).Extract("<h2>  </h2><h3><img src=x></h3>")

	assert.True(t, result.Empty())
	assert.Empty(t, result.Pairs)
}

func TestExtract_LevelFilterKeepsDocumentOrder(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault().WithLevels([]int{2, 3}))

	result := toc.NewExtractor(cfg).Extract(sixLevels)

	var got []string
	for _, h := range result.Headings {
		assert.Contains(t, []int{2, 3}, h.Level())
		got = append(got, h.Text())
	}
	assert.Equal(t, []string{"Two", "Three", "Two again", "Three again"}, got)
}

func TestExtract_CollisionNumbering(t *testing.T) {
	content := "<h2>Overview</h2><h2>Overview</h2><h3>Overview</h3>"

	result := toc.NewExtractor(flatConfig(t)).Extract(content)

	require.Len(t, result.Headings, 3)
	assert.Equal(t, "Overview", result.Headings[0].Anchor)
	assert.Equal(t, "Overview-2", result.Headings[1].Anchor)
	assert.Equal(t, "Overview-3", result.Headings[2].Anchor)
}

func TestExtract_AnchorsAreUniqueWithLiteralSuffix(t *testing.T) {
	content := "<h2>A</h2><h2>A</h2><h2>A-2</h2>"

	result := toc.NewExtractor(flatConfig(t)).Extract(content)

	require.Len(t, result.Headings, 3)
	seen := map[string]bool{}
	for _, h := range result.Headings {
		assert.False(t, seen[h.Anchor], "duplicate anchor %q", h.Anchor)
		seen[h.Anchor] = true
	}
	assert.Equal(t, "A-2-2", result.Headings[2].Anchor)
}

func TestExtract_CollisionTableIsPerCall(t *testing.T) {
	extractor := toc.NewExtractor(flatConfig(t))

	first := extractor.Extract("<h2>Overview</h2>")
	second := extractor.Extract("<h2>Overview</h2>")

	assert.Equal(t, "Overview", first.Headings[0].Anchor)
	assert.Equal(t, "Overview", second.Headings[0].Anchor)
}

func TestExtract_HierarchicalScenario(t *testing.T) {
	content := "<h2>Intro</h2><h5>Detail</h5><h2>Intro</h2>"

	result := toc.NewExtractor(defaultConfig(t)).Extract(content)

	want := `<li class="nav-item"><a class="nav-link" href="#Intro">Intro</a>` +
		`<ul class="nav ml-3"><li class="nav-item">` +
		`<ul class="nav ml-3"><li class="nav-item">` +
		`<ul class="nav ml-3"><li class="nav-item">` +
		`<a class="nav-link" href="#Detail">Detail</a>` +
		`</li></ul></li></ul></li></ul></li>` +
		`<li class="nav-item"><a class="nav-link" href="#Intro-2">Intro</a></li>`
	assert.Equal(t, want, result.Items)
	assert.Equal(t, 2, strings.Count(result.Items, `href="#Intro`))
}

func TestExtract_FlatNumbering(t *testing.T) {
	content := "<h4>Deep</h4><h1>Top</h1><h3>Middle</h3>"

	result := toc.NewExtractor(flatConfig(t)).Extract(content)

	want := `<li class="nav-item"><a class="nav-link" href="#Deep"><span class="toc-number">1</span><span class="toc-text">Deep</span></a></li>` +
		`<li class="nav-item"><a class="nav-link" href="#Top"><span class="toc-number">2</span><span class="toc-text">Top</span></a></li>` +
		`<li class="nav-item"><a class="nav-link" href="#Middle"><span class="toc-number">3</span><span class="toc-text">Middle</span></a></li>`
	assert.Equal(t, want, result.Items)
}

func TestExtract_FlatWithoutNumbers(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault().WithHierarchical(false).WithNumbered(false))

	result := toc.NewExtractor(cfg).Extract("<h2>A</h2>")

	assert.Equal(t, `<li class="nav-item"><a class="nav-link" href="#A"><span class="toc-text">A</span></a></li>`, result.Items)
}

func TestExtract_PairsAreAligned(t *testing.T) {
	content := `<h2 class="title">Getting <em>Started</em></h2><p>x</p><h3>Next</h3>`

	result := toc.NewExtractor(defaultConfig(t)).Extract(content)

	assert.Equal(t, []string{
		`<h2 class="title">Getting <em>Started</em></h2>`,
		`<h3>Next</h3>`,
	}, result.Find())
	assert.Equal(t, []string{
		`<h2 class="title"><span id="Getting_Started">Getting <em>Started</em></span></h2>`,
		`<h3><span id="Next">Next</span></h3>`,
	}, result.Replace())
}

func TestExtract_RoundTrip(t *testing.T) {
	content := "<p>lead</p>\n<h2 id=\"x\">Setup</h2>\n<p>body</p>\n<h3>Setup</h3>\n<h2>目次</h2>\n"

	result := toc.NewExtractor(defaultConfig(t)).Extract(content)
	rewritten := result.Apply(content)
	require.NotEqual(t, content, rewritten)

	restored := rewritten
	for _, h := range result.Headings {
		anchored := h.Replacement()
		unwrapped := heading.Unwrap(anchored, h.Match.OpenTag, h.Match.CloseTag)
		assert.Equal(t, h.Match.Fragment, unwrapped)
		restored = strings.Replace(restored, anchored, unwrapped, 1)
	}
	assert.Equal(t, content, restored)
}

func TestExtract_ApplyOnSeparateCopy(t *testing.T) {
	content := "<h2>A</h2><h2>B</h2>"
	result := toc.NewExtractor(defaultConfig(t)).Extract(content)

	copyWithPrefix := "<aside>sidebar</aside>" + content

	assert.Equal(t,
		`<aside>sidebar</aside><h2><span id="A">A</span></h2><h2><span id="B">B</span></h2>`,
		result.Apply(copyWithPrefix))
}

func TestExtract_AnchorOptions(t *testing.T) {
	cfg := buildConfig(t, config.WithDefault().WithLowercase(true).WithHyphenate(true))

	result := toc.NewExtractor(cfg).Extract("<h2>API Reference</h2><h2>API reference</h2>")

	require.Len(t, result.Headings, 2)
	assert.Equal(t, "api-reference", result.Headings[0].Anchor)
	assert.Equal(t, "api-reference-2", result.Headings[1].Anchor)
}

func TestExtract_TransformHook(t *testing.T) {
	var seen []string
	extractor := toc.NewExtractor(defaultConfig(t), toc.WithTransform(func(anchor string, fragment string) string {
		seen = append(seen, fragment)
		return "sec-" + anchor
	}))

	result := extractor.Extract("<h2>Intro</h2>")

	require.Len(t, result.Headings, 1)
	assert.Equal(t, "sec-Intro", result.Headings[0].Anchor)
	assert.Equal(t, []string{"<h2>Intro</h2>"}, seen)
	assert.Contains(t, result.Items, `href="#sec-Intro"`)
	assert.Equal(t, `<h2><span id="sec-Intro">Intro</span></h2>`, result.Replace()[0])
}

func TestExtract_ScannerFromConfig(t *testing.T) {
	content := "<!-- <h2>Hidden</h2> --><h2>Shown</h2>"

	pattern := toc.NewExtractor(defaultConfig(t)).Extract(content)
	token := toc.NewExtractor(buildConfig(t, config.WithDefault().WithScanner(config.ScannerToken))).Extract(content)

	assert.Len(t, pattern.Headings, 2)
	require.Len(t, token.Headings, 1)
	assert.Equal(t, "Shown", token.Headings[0].Text())
}

func TestExtract_WithScannerOverride(t *testing.T) {
	content := "<!-- <h2>Hidden</h2> --><h2>Shown</h2>"

	result := toc.NewExtractor(defaultConfig(t), toc.WithScanner(heading.TokenScanner{})).Extract(content)

	require.Len(t, result.Headings, 1)
	assert.Equal(t, "Shown", result.Headings[0].Anchor)
}

func TestExtract_DepthMatchesLevelSpread(t *testing.T) {
	result := toc.NewExtractor(defaultConfig(t)).Extract(sixLevels)

	markup := "<ul>" + result.Items + "</ul>"
	depth, maxDepth := 0, 0
	for i := 0; i < len(markup); i++ {
		switch {
		case strings.HasPrefix(markup[i:], "<ul"):
			depth++
			maxDepth = max(maxDepth, depth)
		case strings.HasPrefix(markup[i:], "</ul>"):
			depth--
		}
	}
	assert.Equal(t, 0, depth)
	assert.Equal(t, 6-1+1, maxDepth)
}

func TestExtract_ConcurrentCallsShareNothing(t *testing.T) {
	extractor := toc.NewExtractor(defaultConfig(t))
	content := "<h2>Overview</h2><h2>Overview</h2>"
	want := extractor.Extract(content)

	var wg sync.WaitGroup
	results := make([]toc.Result, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = extractor.Extract(content)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.Items, got.Items)
		assert.Equal(t, want.Replace(), got.Replace())
	}
}
