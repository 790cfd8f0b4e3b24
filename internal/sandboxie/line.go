package sandboxie

import "strings"

// LineKind classifies one line of the file.
type LineKind int

const (
	LineOther LineKind = iota
	LineBlank
	LineComment
	LineHeader
	LineKeyValue
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineHeader:
		return "header"
	case LineKeyValue:
		return "key-value"
	default:
		return "other"
	}
}

// Line is one parsed line. Raw holds the text without its terminator and
// is what gets written back; the other fields are derived from it.
type Line struct {
	Kind  LineKind
	Raw   string
	EOL   string // "\r\n", "\n", or "" for a final unterminated line
	Name  string // section name, for headers
	Key   string // for key-value lines
	Value string
}

// Property is one key=value setting in a box section.
type Property struct {
	Key   string
	Value string
}

func (p Property) String() string {
	return p.Key + "=" + p.Value
}

// parseLine classifies raw.
func parseLine(raw, eol string) Line {
	l := Line{Raw: raw, EOL: eol}
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		l.Kind = LineBlank
	case strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";"):
		l.Kind = LineComment
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && len(trimmed) >= 2:
		l.Kind = LineHeader
		l.Name = trimmed[1 : len(trimmed)-1]
	default:
		if key, value, ok := strings.Cut(raw, "="); ok && strings.TrimSpace(key) != "" {
			l.Kind = LineKeyValue
			l.Key = strings.TrimSpace(key)
			l.Value = value
		} else {
			l.Kind = LineOther
		}
	}
	return l
}

// isSection reports whether l is the header of section name. Space around
// the brackets is ignored, space inside them is not, and case does not
// matter.
func (l Line) isSection(name string) bool {
	return l.Kind == LineHeader && strings.EqualFold(l.Name, strings.TrimSpace(name))
}

func headerLine(name, eol string) Line {
	return parseLine("["+name+"]", eol)
}

func propertyLine(p Property, eol string) Line {
	return parseLine(p.String(), eol)
}
