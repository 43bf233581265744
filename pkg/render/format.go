package render

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/ssr/pkg/vdom"
)

// largeStringLength is the length above which a piece is indented on its
// own line in pretty mode.
const largeStringLength = 40

// nonDimensional matches style properties whose numeric values are unitless.
var nonDimensional = regexp.MustCompile(`(?i)acit|ex(?:s|g|n|p|$)|rph|ows|mnc|ntw|ine[ch]|zoo|^ord`)

// isLargeString reports whether s is long, spans lines or holds markup.
func isLargeString(s string) bool {
	return utf8.RuneCountInString(s) > largeStringLength || strings.ContainsAny(s, "\n<")
}

// indent appends unit after every run of line breaks in s.
func indent(s, unit string) string {
	if !containsNewline(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(unit)*4)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == '\n' && (i+1 == len(s) || s[i+1] != '\n') {
			b.WriteString(unit)
		}
	}
	return b.String()
}

func containsNewline(s string) bool {
	return strings.IndexByte(s, '\n') >= 0
}

// objectEntries returns the entries of an object-valued class or style.
// vdom.Props keeps insertion order; plain maps are walked in key order.
func objectEntries(v any) ([]vdom.Attr, bool) {
	switch m := v.(type) {
	case vdom.Props:
		return m, true
	case map[string]any:
		return sortedEntries(m), true
	case map[string]bool:
		return sortedEntries(m), true
	case map[string]string:
		return sortedEntries(m), true
	}
	return nil, false
}

func sortedEntries[V any](m map[string]V) []vdom.Attr {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]vdom.Attr, len(keys))
	for i, k := range keys {
		out[i] = vdom.Attr{Key: k, Value: m[k]}
	}
	return out
}

// classObjToString joins the keys with truthy values.
func classObjToString(entries []vdom.Attr) string {
	var b strings.Builder
	for _, e := range entries {
		if !truthy(e.Value) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Key)
	}
	return b.String()
}

// styleObjToCSS writes "prop: value;" pairs separated by spaces, skipping
// nil values. It returns "" for an empty object.
func styleObjToCSS(entries []vdom.Attr) string {
	var b strings.Builder
	for _, e := range entries {
		if e.Value == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(jsToCSS(e.Key))
		b.WriteString(": ")
		b.WriteString(vdom.FormatValue(e.Value))
		if isNumber(e.Value) && !nonDimensional.MatchString(e.Key) {
			b.WriteString("px")
		}
		b.WriteByte(';')
	}
	return b.String()
}

// jsToCSS converts a camelCase property to its hyphenated CSS name.
func jsToCSS(prop string) string {
	var b strings.Builder
	for _, r := range prop {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// truthy follows the usual template-language truthiness: nil, false, zero,
// NaN and the empty string are false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	return renderable(v)
}
