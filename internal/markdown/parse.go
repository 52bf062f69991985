// Package markdown splits Markdown documents into YAML frontmatter and body.
package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Document is a Markdown file with optional YAML frontmatter.
type Document struct {
	Frontmatter map[string]any
	Body        string

	raw []byte
}

// HasFrontmatter reports whether the document opened with a frontmatter block.
func (d Document) HasFrontmatter() bool { return d.raw != nil }

// Decode unmarshals the frontmatter block into v.
func (d Document) Decode(v any) error {
	if d.raw == nil {
		return errors.New("markdown: document has no frontmatter")
	}
	if err := yaml.Unmarshal(d.raw, v); err != nil {
		return fmt.Errorf("markdown: decode frontmatter: %w", err)
	}
	return nil
}

// ParseFile reads and parses the Markdown file at path.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse extracts frontmatter delimited by two lines containing only "---" at the
// top of the input. Everything after the closing fence is the body.
func Parse(r io.Reader) (Document, error) {
	br := bufio.NewReader(r)
	first, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Document{}, err
	}

	doc := Document{Frontmatter: map[string]any{}}
	if strings.TrimRight(first, "\r\n") != fence {
		// no frontmatter; the first line belongs to the body
		rest, err := io.ReadAll(br)
		if err != nil {
			return Document{}, err
		}
		doc.Body = first + string(rest)
		return doc, nil
	}

	fm := []byte{}
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Document{}, err
		}
		if strings.TrimSpace(line) == fence {
			break
		}
		fm = append(fm, line...)
		if errors.Is(err, io.EOF) {
			break
		}
	}
	doc.raw = fm
	if err := yaml.Unmarshal(doc.raw, &doc.Frontmatter); err != nil {
		return Document{}, fmt.Errorf("markdown: parse frontmatter: %w", err)
	}
	if doc.Frontmatter == nil {
		doc.Frontmatter = map[string]any{}
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return Document{}, err
	}
	doc.Body = string(body)
	return doc, nil
}
