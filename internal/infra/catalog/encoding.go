package catalog

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	errOddLength    = errors.New("odd byte length for a 16-bit encoding")
	errNoZeroBytes  = errors.New("no zero bytes for a 16-bit encoding")
	errReversedBOM  = errors.New("byte order mark does not match the encoding")
	errInvalidBytes = errors.New("invalid byte sequence")
)

const bom = "\uFEFF"

type textEncoding struct {
	name   string
	decode func([]byte) (string, error)
}

// encodings is tried in order; the first that decodes wins.
var encodings = []textEncoding{
	{name: "utf-16-le", decode: utf16Decoder(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))},
	{name: "utf-16", decode: utf16Decoder(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))},
	{name: "utf-8", decode: utf8Decoder(unicode.UTF8)},
	{name: "utf-8-sig", decode: utf8Decoder(unicode.UTF8BOM)},
	{name: "latin-1", decode: charmapDecoder(charmap.ISO8859_1)},
	{name: "windows-1252", decode: charmapDecoder(charmap.Windows1252)},
}

func utf16Decoder(enc encoding.Encoding) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		if len(b)%2 != 0 {
			return "", errOddLength
		}
		// Any JSON document carries ASCII punctuation, which is zero-padded in UTF-16.
		if bytes.IndexByte(b, 0) < 0 {
			return "", errNoZeroBytes
		}
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		text := string(out)
		if strings.HasPrefix(text, "\uFFFE") {
			return "", errReversedBOM
		}
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", errInvalidBytes
		}
		return text, nil
	}
}

func utf8Decoder(enc encoding.Encoding) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		if !utf8.Valid(b) {
			return "", errInvalidBytes
		}
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		out, err := cm.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		text := string(out)
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", errInvalidBytes
		}
		return text, nil
	}
}
