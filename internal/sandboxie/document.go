package sandboxie

import "strings"

// Document is a parsed Sandboxie.ini.
type Document struct {
	Lines    []Line
	Encoding Encoding
	// EOL is the line ending used for lines this package adds. It follows
	// the first terminated line of the file, defaulting to CRLF.
	EOL string
}

// Parse decodes raw file content into a Document.
func Parse(data []byte) (*Document, error) {
	text, enc, err := decode(data)
	if err != nil {
		return nil, err
	}
	return parseText(text, enc), nil
}

func parseText(text string, enc Encoding) *Document {
	doc := &Document{Encoding: enc}

	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			doc.Lines = append(doc.Lines, parseLine(text, ""))
			break
		}
		raw, eol := text[:i], "\n"
		if strings.HasSuffix(raw, "\r") {
			raw, eol = raw[:len(raw)-1], "\r\n"
		}
		if doc.EOL == "" {
			doc.EOL = eol
		}
		doc.Lines = append(doc.Lines, parseLine(raw, eol))
		text = text[i+1:]
	}

	if doc.EOL == "" {
		doc.EOL = "\r\n"
	}
	return doc
}

// String renders the document as UTF-8 text.
func (d *Document) String() string {
	var b strings.Builder
	for _, l := range d.Lines {
		b.WriteString(l.Raw)
		b.WriteString(l.EOL)
	}
	return b.String()
}

// Bytes renders the document in its original encoding.
func (d *Document) Bytes() ([]byte, error) {
	return encode(d.String(), d.Encoding)
}

// HasSection reports whether a [name] header is present.
func (d *Document) HasSection(name string) bool {
	for _, l := range d.Lines {
		if l.isSection(name) {
			return true
		}
	}
	return false
}

// SectionNames lists headers in file order.
func (d *Document) SectionNames() []string {
	var names []string
	for _, l := range d.Lines {
		if l.Kind == LineHeader {
			names = append(names, l.Name)
		}
	}
	return names
}

// Section returns the properties of the first section called name.
func (d *Document) Section(name string) ([]Property, bool) {
	var props []Property
	found, inSection := false, false
	for _, l := range d.Lines {
		if l.Kind == LineHeader {
			if found {
				break
			}
			inSection = l.isSection(name)
			found = inSection
			continue
		}
		if inSection && l.Kind == LineKeyValue {
			props = append(props, Property{Key: l.Key, Value: l.Value})
		}
	}
	return props, found
}

// AppendSection adds [name] and props at the end of the document. It does
// nothing and returns false when the section already exists.
func (d *Document) AppendSection(name string, props []Property) bool {
	if d.HasSection(name) {
		return false
	}

	if n := len(d.Lines); n > 0 {
		if d.Lines[n-1].EOL == "" {
			d.Lines[n-1].EOL = d.EOL
		}
		if d.Lines[n-1].Kind != LineBlank {
			d.Lines = append(d.Lines, parseLine("", d.EOL))
		}
	}

	d.Lines = append(d.Lines, headerLine(name, d.EOL))
	for _, p := range props {
		d.Lines = append(d.Lines, propertyLine(p, d.EOL))
	}
	return true
}

// RemoveSection drops every [name] section: the header and all lines up to
// the next header. It returns how many sections were removed.
func (d *Document) RemoveSection(name string) int {
	kept := d.Lines[:0:0]
	removed, skipping := 0, false

	for _, l := range d.Lines {
		if l.Kind == LineHeader {
			skipping = l.isSection(name)
			if skipping {
				removed++
				continue
			}
		}
		if !skipping {
			kept = append(kept, l)
		}
	}

	if removed > 0 {
		d.Lines = kept
	}
	return removed
}
