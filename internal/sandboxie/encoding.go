package sandboxie

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies how the file's text was stored.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE // with BOM, as written by Sandboxie
	EncodingUTF16BE
	EncodingUTF16LENoBOM
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	case EncodingUTF16LENoBOM:
		return "utf-16le-nobom"
	default:
		return "utf-8"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// detectEncoding inspects the leading bytes of data.
func detectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return EncodingUTF16BE
	case len(data) >= 2 && data[0] != 0 && data[1] == 0:
		// ASCII text stored as UTF-16LE without a BOM.
		return EncodingUTF16LENoBOM
	default:
		return EncodingUTF8
	}
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case EncodingUTF16LENoBOM:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	default:
		return nil
	}
}

// decode returns data as UTF-8 text along with the detected encoding.
func decode(data []byte) (string, Encoding, error) {
	enc := detectEncoding(data)
	codec := enc.codec()
	if codec == nil {
		return string(data), enc, nil
	}
	text, err := codec.NewDecoder().Bytes(data)
	if err != nil {
		return "", enc, fmt.Errorf("failed to decode %s text: %w", enc, err)
	}
	return string(text), enc, nil
}

// encode converts UTF-8 text back into enc.
func encode(text string, enc Encoding) ([]byte, error) {
	codec := enc.codec()
	if codec == nil {
		return []byte(text), nil
	}
	data, err := codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s text: %w", enc, err)
	}
	return data, nil
}
