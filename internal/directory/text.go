package directory

import (
	"strings"

	"golang.org/x/net/html"
)

// escapedBullet is the literal six-character sequence the spreadsheet export
// left in feature lists instead of a bullet character.
const escapedBullet = `\u2022`

// PlainText flattens a free-text value for terminal display: inline tags are
// dropped (block tags become line breaks), entities are decoded and escaped
// bullets are restored. Values without markup pass through unchanged.
func PlainText(s string) string {
	s = strings.ReplaceAll(s, escapedBullet, "•")
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br", "p", "div", "li", "ul", "ol", "tr":
				if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
					sb.WriteString("\n")
				}
			}
		}
	}
}

// Paragraphs splits text on blank lines, dropping empty chunks.
func Paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
