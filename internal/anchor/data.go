package anchor

// TransformFunc receives the proposed anchor and the original heading
// fragment and returns the anchor to use. It runs after collision
// resolution, so whatever it returns is used as is.
type TransformFunc func(anchor string, fragment string) string

// Identity is the default TransformFunc.
func Identity(anchor string, _ string) string {
	return anchor
}

const (
	separatorUnderscore = "_"
	separatorHyphen     = "-"
	ideographicSpace    = "　"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLowercase lowercases every generated anchor.
func WithLowercase(lowercase bool) Option {
	return func(g *Generator) {
		g.lowercase = lowercase
	}
}

// WithHyphenate joins words with "-" instead of "_".
func WithHyphenate(hyphenate bool) Option {
	return func(g *Generator) {
		g.hyphenate = hyphenate
	}
}

// WithTransform installs an anchor override hook. A nil func restores the
// identity transform.
func WithTransform(fn TransformFunc) Option {
	return func(g *Generator) {
		if fn == nil {
			fn = Identity
		}
		g.transform = fn
	}
}
