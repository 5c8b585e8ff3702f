package doc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

var (
	// ErrParseFailure reports input that could not be turned into a tree.
	ErrParseFailure = errors.New("failed to parse document")
	// ErrEmptyDocument reports a tree without a root element, or blank input.
	ErrEmptyDocument = errors.New("empty document")
)

var markdown = goldmark.New(
	goldmark.WithRendererOptions(
		gmhtml.WithXHTML(),
		gmhtml.WithUnsafe(),
	),
)

// ParseMarkdown converts Markdown source to HTML and returns the root element
// of the resulting tree.
func ParseMarkdown(src []byte) (Node, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := markdown.Convert(src, &out); err != nil {
		return nil, fmt.Errorf("%w: markdown: %v", ErrParseFailure, err)
	}
	return parseHTML(&out)
}

// ParseHTML reads an HTML document and returns its root element.
func ParseHTML(r io.Reader) (Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if err := checkInput(src); err != nil {
		return nil, err
	}
	return parseHTML(bytes.NewReader(src))
}

func parseHTML(r io.Reader) (Node, error) {
	d, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: html: %v", ErrParseFailure, err)
	}
	root := rootElement(d)
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return FromHTML(root), nil
}

func checkInput(src []byte) error {
	if len(bytes.TrimSpace(src)) == 0 {
		return ErrEmptyDocument
	}
	if !utf8.Valid(src) {
		return fmt.Errorf("%w: input is not valid UTF-8", ErrParseFailure)
	}
	return nil
}

// CountBlocks returns the number of top-level Markdown blocks in src, at
// least 1. It is the initial row estimate for the render buffer.
func CountBlocks(src []byte) int {
	root := markdown.Parser().Parse(text.NewReader(src))
	if n := root.ChildCount(); n > 0 {
		return n
	}
	return 1
}
