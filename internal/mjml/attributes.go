// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"maps"
	"strconv"
	"strings"
)

// headAttributes holds the defaults declared in <mj-attributes>.
type headAttributes struct {
	all     map[string]string
	byTag   map[string]map[string]string
	classes map[string]map[string]string
}

func newHeadAttributes() *headAttributes {
	return &headAttributes{
		all:     map[string]string{},
		byTag:   map[string]map[string]string{},
		classes: map[string]map[string]string{},
	}
}

func (h *headAttributes) load(block *node) {
	for _, c := range block.elements() {
		values := make(map[string]string, len(c.attrs))
		for _, a := range c.attrs {
			values[a.name] = a.value
		}

		switch c.tag {
		case "mj-all":
			maps.Copy(h.all, values)
		case "mj-class":
			name := values["name"]
			delete(values, "name")
			if name != "" {
				h.classes[name] = values
			}
		default:
			if h.byTag[c.tag] == nil {
				h.byTag[c.tag] = map[string]string{}
			}
			maps.Copy(h.byTag[c.tag], values)
		}
	}
}

// resolve returns the effective attributes of n, lowest precedence first:
// component defaults, mj-all, per-tag defaults, mj-class values, then the
// attributes written on the element.
func (h *headAttributes) resolve(n *node) map[string]string {
	out := maps.Clone(registry[n.tag].defaults)
	if out == nil {
		out = map[string]string{}
	}
	maps.Copy(out, h.all)
	maps.Copy(out, h.byTag[n.tag])

	if classes, ok := n.attr("mj-class"); ok {
		for _, class := range strings.Fields(classes) {
			maps.Copy(out, h.classes[class])
		}
	}

	for _, a := range n.attrs {
		out[a.name] = a.value
	}
	return out
}

// boxSides expands a CSS shorthand of one to four values.
func boxSides(v string) (top, right, bottom, left string) {
	p := strings.Fields(v)
	switch len(p) {
	case 1:
		return p[0], p[0], p[0], p[0]
	case 2:
		return p[0], p[1], p[0], p[1]
	case 3:
		return p[0], p[1], p[2], p[1]
	case 4:
		return p[0], p[1], p[2], p[3]
	default:
		return "", "", "", ""
	}
}

// paddingPx returns the horizontal padding of side ("left" or "right") in
// pixels, honouring padding-<side> over the shorthand.
func paddingPx(attrs map[string]string, side string) int {
	if v := attrs["padding-"+side]; v != "" {
		return pxValue(v)
	}
	_, right, _, left := boxSides(attrs["padding"])
	if side == "left" {
		return pxValue(left)
	}
	return pxValue(right)
}

// pxValue parses "25px" or "25" as 25. Anything else is 0.
func pxValue(v string) int {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// widthSpec is a parsed column or group width.
type widthSpec struct {
	value   float64
	percent bool
}

func parseWidth(v string) (widthSpec, bool) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		return widthSpec{value: f, percent: true}, err == nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	return widthSpec{value: f}, err == nil
}

func (w widthSpec) px(container int) int {
	if w.percent {
		return int(float64(container) * w.value / 100)
	}
	return int(w.value)
}

// className is the responsive class of a column, e.g. mj-column-per-33-333.
func (w widthSpec) className(prefix string) string {
	n := strings.ReplaceAll(strconv.FormatFloat(w.value, 'f', -1, 64), ".", "-")
	if w.percent {
		return prefix + "-per-" + n
	}
	return prefix + "-px-" + n
}

func (w widthSpec) css() string {
	n := strconv.FormatFloat(w.value, 'f', -1, 64)
	if w.percent {
		return n + "%"
	}
	return n + "px"
}
