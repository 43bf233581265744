package render

import "strings"

// encodeEntities escapes text for safe inclusion in HTML content and in
// double-quoted attribute values.
func encodeEntities(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
