// Package markdown renders recognized markdown, including LaTeX math, to
// sanitized HTML.
package markdown

import (
	"bytes"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	displayMath = regexp.MustCompile(`\\\[([\s\S]+?)\\\]`)
	inlineMath  = regexp.MustCompile(`\\\(([\s\S]+?)\\\)`)
)

var mathElements = []string{
	"math", "semantics", "annotation", "annotation-xml",
	"mrow", "mi", "mn", "mo", "ms", "mtext", "mspace",
	"msup", "msub", "msubsup", "mfrac", "msqrt", "mroot",
	"mover", "munder", "munderover", "mmultiscripts", "mprescripts", "none",
	"mtable", "mtr", "mtd", "mlabeledtr",
	"mstyle", "mpadded", "mphantom", "menclose", "merror",
}

var mathAttributes = []string{
	"xmlns", "display", "encoding",
	"mathvariant", "mathsize", "mathcolor",
	"stretchy", "fence", "separator", "symmetric", "largeop", "movablelimits",
	"lspace", "rspace", "minsize", "maxsize",
	"displaystyle", "scriptlevel",
	"accent", "accentunder",
	"linethickness", "notation",
	"columnalign", "rowalign", "columnspacing", "rowspacing", "columnlines", "rowlines",
	"width", "height", "depth", "voffset",
}

var (
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			treeblood.MathML(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowDataURIImages()

	p.AllowElements(mathElements...)
	p.AllowAttrs(mathAttributes...).OnElements(mathElements...)

	p.AllowAttrs("align", "colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("border").OnElements("table")
	p.AllowStyles("text-align", "width", "max-width", "height").Globally()

	return p
}

// NormalizeDelimiters rewrites \[…\] as $$…$$ and \(…\) as $…$.
func NormalizeDelimiters(s string) string {
	s = displayMath.ReplaceAllString(s, "$$$$$1$$$$")
	s = inlineMath.ReplaceAllString(s, "$$$1$$")

	return s
}

func Render(s string) (string, error) {
	var buf bytes.Buffer

	if err := md.Convert([]byte(NormalizeDelimiters(s)), &buf); err != nil {
		return "", err
	}

	return policy.Sanitize(buf.String()), nil
}
