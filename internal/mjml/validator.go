// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

type validator struct {
	filePath string
	diags    []Diagnostic
}

// validate checks every element below root against the component registry.
// Findings are returned in document order.
func validate(ctx context.Context, root *node, filePath string) ([]Diagnostic, error) {
	v := &validator{filePath: filePath}
	if err := v.walk(ctx, root, true); err != nil {
		return nil, err
	}
	return v.diags, nil
}

func (v *validator) report(n *node, format string, args ...any) {
	v.diags = append(v.diags, newDiagnostic(n.line, n.tag, v.filePath, fmt.Sprintf(format, args...)))
}

func (v *validator) walk(ctx context.Context, n *node, isRoot bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.comment {
		return nil
	}

	comp, ok := registry[n.tag]
	if !ok {
		v.report(n, "Element %s doesn't exist or is not registered", n.tag)
		return nil
	}

	for _, a := range n.attrs {
		if _, global := globalAttrs[a.name]; global {
			continue
		}
		if _, known := comp.attrs[a.name]; !known {
			v.report(n, "Attribute %s is illegal", a.name)
		}
	}

	if !isRoot && len(comp.parents) > 0 && !slices.Contains(comp.parents, n.parent.tag) {
		v.report(n, "%s cannot be used inside %s, only inside: %s",
			n.tag, n.parent.tag, strings.Join(comp.parents, ", "))
	}

	for _, a := range n.attrs {
		t, known := comp.attrs[a.name]
		if known && !t.valid(a.value) {
			v.report(n, "Attribute %s has invalid value: %s for type %s", a.name, a.value, t)
		}
	}

	// mj-attributes children are defaults keyed by tag, not real elements.
	if n.tag == "mj-attributes" {
		return nil
	}

	for _, c := range n.children {
		if err := v.walk(ctx, c, false); err != nil {
			return err
		}
	}
	return nil
}
