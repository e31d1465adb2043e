// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

type attribute struct {
	name  string
	value string
}

// node is an element of the parsed MJML tree. Comment nodes have an empty
// tag and keep their text in content.
type node struct {
	tag      string
	attrs    []attribute
	children []*node
	content  string
	line     int
	parent   *node
	comment  bool
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

func (n *node) elements() []*node {
	out := make([]*node, 0, len(n.children))
	for _, c := range n.children {
		if !c.comment {
			out = append(out, c)
		}
	}
	return out
}

func (n *node) child(tag string) *node {
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// parse builds the element tree of doc and returns its first top-level
// element, or nil if the document has none.
//
// Content of ending-tag components (mj-text, mj-button, ...) is kept as the
// raw source between the opening and closing tag, so any HTML inside passes
// through untouched.
func parse(doc string, keepComments bool) (*node, error) {
	z := html.NewTokenizer(strings.NewReader(doc))
	document := &node{}
	stack := []*node{document}
	line := 1

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return nil, fmt.Errorf("tokenizing mjml: %w", z.Err())
		}

		// Raw must be copied before TagName, which lowercases the buffer.
		raw := string(z.Raw())
		startLine := line
		line += strings.Count(raw, "\n")
		top := stack[len(stack)-1]

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			n := readElement(z, top, startLine)
			top.children = append(top.children, n)

			if tt == html.SelfClosingTagToken {
				continue
			}
			if isEndingTag(n.tag) {
				content, lines, err := readContent(z, n.tag, keepComments)
				if err != nil {
					return nil, err
				}
				n.content = content
				line += lines
				continue
			}
			stack = append(stack, n)

		case html.EndTagToken:
			name, _ := z.TagName()
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].tag == string(name) {
					stack = stack[:i]
					break
				}
			}

		case html.CommentToken:
			if keepComments {
				top.children = append(top.children, &node{
					comment: true,
					content: string(z.Text()),
					line:    startLine,
					parent:  top,
				})
			}
		}
	}

	for _, c := range document.children {
		if !c.comment {
			return c, nil
		}
	}
	return nil, nil
}

func readElement(z *html.Tokenizer, parent *node, line int) *node {
	name, hasAttr := z.TagName()
	n := &node{tag: string(name), line: line, parent: parent}

	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		n.attrs = append(n.attrs, attribute{name: string(key), value: string(val)})
	}
	return n
}

// readContent consumes tokens up to the closing tag matching tag and returns
// the raw source in between, trimmed, plus the number of newlines consumed.
func readContent(z *html.Tokenizer, tag string, keepComments bool) (string, int, error) {
	var b strings.Builder
	depth, lines := 0, 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return strings.TrimSpace(b.String()), lines, nil
			}
			return "", lines, fmt.Errorf("tokenizing <%s> content: %w", tag, z.Err())
		}

		raw := string(z.Raw())
		lines += strings.Count(raw, "\n")

		switch tt {
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				if depth == 0 {
					return strings.TrimSpace(b.String()), lines, nil
				}
				depth--
			}
		case html.CommentToken:
			if !keepComments {
				continue
			}
		}

		b.WriteString(raw)
	}
}
