package client

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText turns the raw body into UTF-8 text. Invalid sequences become
// U+FFFD and a leading byte order mark is dropped.
func decodeText(raw []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// stripDoctypes drops the exact declarations the service emits. encoding/xml
// never resolves external DTDs, so anything left over is skipped by the parser.
func stripDoctypes(text string, doctypes []string) string {
	for _, decl := range doctypes {
		text = strings.ReplaceAll(text, decl, "")
	}
	return text
}

func newXMLDecoder(doc string) *xml.Decoder {
	d := xml.NewDecoder(strings.NewReader(doc))
	// doc is already UTF-8, whatever the prolog claims
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return d
}

// collect decodes every element named name, at any depth, in document
// order. A blank document yields an empty slice. On error the returned slice
// is empty as well.
func collect[T any](doc string, name string) ([]T, error) {
	items := make([]T, 0)
	if strings.TrimSpace(doc) == "" {
		return items, nil
	}
	d := newXMLDecoder(doc)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return make([]T, 0), err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != name {
			continue
		}
		var item T
		if err := d.DecodeElement(&item, &start); err != nil {
			return make([]T, 0), err
		}
		items = append(items, item)
	}
}

// tagList is a tags element; each child element with text is one tag.
type tagList struct {
	Items []textElement `xml:",any"`
}

type textElement struct {
	Text string `xml:",chardata"`
}

func (l tagList) values() []string {
	out := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if item.Text == "" {
			continue
		}
		out = append(out, item.Text)
	}
	return out
}

// atoi parses a numeric field as plain base-10. Empty, missing or padded
// values are errors, not zero.
func atoi(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}
