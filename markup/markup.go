// Package markup turns AniList's HTML-flavoured text into something a terminal can show.
package markup

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/net/html"
	"golang.org/x/term"
)

var (
	spoiler    = regexp.MustCompile(`~!(?s:(.*?))!~`)
	blankLines = regexp.MustCompile(`\n{3,}`)
	spaces     = regexp.MustCompile(`[ \t]+`)
)

// Text strips tags from an AniList description, keeping line breaks and list bullets.
// Spoiler markers are removed but the spoiler text is kept.
func Text(s string) string {
	s = spoiler.ReplaceAllString(s, "$1")

	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	render(&b, root)

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaces.ReplaceAllString(line, " "))
	}

	return strings.TrimSpace(blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

func render(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// source newlines are layout noise, <br> carries the real ones
		b.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		return
	case html.ElementNode:
		switch n.Data {
		case "br":
			b.WriteString("\n")
		case "p", "div", "ul", "ol", "h1", "h2", "h3", "h4", "h5":
			b.WriteString("\n\n")
			defer b.WriteString("\n\n")
		case "li":
			b.WriteString("\n• ")
		case "script", "style":
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(b, c)
	}
}

// Wrap word-wraps s at width columns and hard-wraps words longer than that.
// A non-positive width leaves s untouched.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	return wrap.String(wordwrap.String(s, width), width)
}

// Truncate shortens s to width columns, ending it with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return truncate.StringWithTail(s, uint(width), "…")
}

// Width is the column count to wrap at: the terminal width capped at 100, or 80 when stdout is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}

	return min(w, 100)
}

// Quantify returns a pluralized string representation of a count.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize upper-cases the first letter of an AniList enum value and lower-cases the rest,
// turning underscores into spaces: "NOT_YET_RELEASED" becomes "Not yet released".
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	return strings.ToUpper(s[:1]) + s[1:]
}
