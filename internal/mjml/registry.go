// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// attrType validates attribute values. String returns the type name used in
// diagnostics, e.g. "unit(px,%){1,4}".
type attrType interface {
	valid(value string) bool
	String() string
}

type stringType struct{}

func (stringType) valid(string) bool { return true }
func (stringType) String() string    { return "string" }

var (
	hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	fnColorRe  = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\(\s*[\d.%\s,/]+\)$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z]+$`)
	integerRe  = regexp.MustCompile(`^\d+$`)
	numberRe   = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

type colorType struct{}

func (colorType) valid(v string) bool {
	v = strings.TrimSpace(v)
	return hexColorRe.MatchString(v) || fnColorRe.MatchString(v) || nameRe.MatchString(v)
}
func (colorType) String() string { return "color" }

type integerType struct{}

func (integerType) valid(v string) bool { return integerRe.MatchString(v) }
func (integerType) String() string      { return "integer" }

type enumType struct {
	values []string
}

func enum(values ...string) enumType { return enumType{values: values} }

func (e enumType) valid(v string) bool { return slices.Contains(e.values, v) }
func (e enumType) String() string      { return "enum(" + strings.Join(e.values, ",") + ")" }

// unitType accepts min to max space separated lengths. An empty unit in
// units allows unitless numbers; "auto" in units allows the keyword.
type unitType struct {
	units    []string
	min, max int
}

func unit(units ...string) unitType { return unitType{units: units, min: 1, max: 1} }

func unitN(min, max int, units ...string) unitType {
	return unitType{units: units, min: min, max: max}
}

func (u unitType) valid(v string) bool {
	parts := strings.Fields(v)
	if len(parts) < u.min || len(parts) > u.max {
		return false
	}
	for _, p := range parts {
		if !u.validPart(p) {
			return false
		}
	}
	return true
}

func (u unitType) validPart(p string) bool {
	if p == "0" || (p == "auto" && slices.Contains(u.units, "auto")) {
		return true
	}
	num := numberRe.FindString(p)
	if num == "" {
		return false
	}
	return slices.Contains(u.units, p[len(num):])
}

func (u unitType) String() string {
	s := "unit(" + strings.Join(u.units, ",") + ")"
	if u.min != 1 || u.max != 1 {
		s += "{" + strconv.Itoa(u.min) + "," + strconv.Itoa(u.max) + "}"
	}
	return s
}

type component struct {
	name     string
	ending   bool
	parents  []string
	attrs    map[string]attrType
	defaults map[string]string
}

// globalAttrs are accepted on every component.
var globalAttrs = map[string]attrType{
	"mj-class":  stringType{},
	"css-class": stringType{},
}

var (
	alignType  = enum("left", "right", "center")
	valignType = enum("top", "bottom", "middle")
	boxUnits   = unitN(1, 4, "px", "%")
)

func paddingAttrs() map[string]attrType {
	return map[string]attrType{
		"padding":        boxUnits,
		"padding-top":    unit("px", "%"),
		"padding-bottom": unit("px", "%"),
		"padding-left":   unit("px", "%"),
		"padding-right":  unit("px", "%"),
	}
}

func borderAttrs() map[string]attrType {
	return map[string]attrType{
		"border":        stringType{},
		"border-top":    stringType{},
		"border-bottom": stringType{},
		"border-left":   stringType{},
		"border-right":  stringType{},
		"border-radius": unitN(1, 4, "px", "%"),
	}
}

func merged(sets ...map[string]attrType) map[string]attrType {
	out := make(map[string]attrType)
	for _, s := range sets {
		maps.Copy(out, s)
	}
	return out
}

var (
	columnLike = []string{"mj-column", "mj-hero"}
	bodyLike   = []string{"mj-body", "mj-wrapper"}
)

func sectionAttrs() map[string]attrType {
	return merged(paddingAttrs(), borderAttrs(), map[string]attrType{
		"background-color":    colorType{},
		"background-url":      stringType{},
		"background-repeat":   enum("repeat", "no-repeat"),
		"background-size":     stringType{},
		"background-position": stringType{},
		"direction":           enum("ltr", "rtl"),
		"full-width":          enum("full-width", "false", ""),
		"text-align":          alignType,
	})
}

func textAttrs() map[string]attrType {
	return map[string]attrType{
		"color":                      colorType{},
		"container-background-color": colorType{},
		"font-family":                stringType{},
		"font-size":                  unit("px"),
		"font-style":                 stringType{},
		"font-weight":                stringType{},
		"line-height":                unit("px", "%", ""),
		"letter-spacing":             unit("px", "em"),
		"text-decoration":            stringType{},
		"text-transform":             stringType{},
	}
}

var registry = buildRegistry()

func buildRegistry() map[string]component {
	components := []component{
		{
			name:  "mjml",
			attrs: map[string]attrType{"owa": stringType{}, "lang": stringType{}, "dir": stringType{}},
		},
		{name: "mj-head", parents: []string{"mjml"}, attrs: map[string]attrType{}},
		{
			name:     "mj-body",
			parents:  []string{"mjml"},
			attrs:    map[string]attrType{"width": unit("px"), "background-color": colorType{}},
			defaults: map[string]string{"width": "600px"},
		},
		{name: "mj-attributes", parents: []string{"mj-head"}, attrs: map[string]attrType{}},
		{
			name:     "mj-breakpoint",
			parents:  []string{"mj-head"},
			attrs:    map[string]attrType{"width": unit("px")},
			defaults: map[string]string{"width": "480px"},
		},
		{
			name:    "mj-font",
			parents: []string{"mj-head"},
			attrs:   map[string]attrType{"name": stringType{}, "href": stringType{}},
		},
		{name: "mj-preview", ending: true, parents: []string{"mj-head"}, attrs: map[string]attrType{}},
		{name: "mj-title", ending: true, parents: []string{"mj-head"}, attrs: map[string]attrType{}},
		{
			name:    "mj-style",
			ending:  true,
			parents: []string{"mj-head"},
			attrs:   map[string]attrType{"inline": enum("inline")},
		},
		{
			name:    "mj-raw",
			ending:  true,
			parents: []string{"mjml", "mj-head", "mj-body", "mj-wrapper", "mj-section", "mj-column", "mj-group", "mj-hero"},
			attrs:   map[string]attrType{"position": enum("file-start")},
		},
		{
			name:    "mj-wrapper",
			parents: []string{"mj-body"},
			attrs:   sectionAttrs(),
			defaults: map[string]string{
				"direction": "ltr", "padding": "20px 0", "text-align": "center",
			},
		},
		{
			name:    "mj-section",
			parents: bodyLike,
			attrs:   sectionAttrs(),
			defaults: map[string]string{
				"direction": "ltr", "padding": "20px 0", "text-align": "center",
				"background-repeat": "repeat", "background-size": "auto",
			},
		},
		{
			name:    "mj-group",
			parents: []string{"mj-section"},
			attrs: map[string]attrType{
				"width":            unit("px", "%"),
				"vertical-align":   valignType,
				"background-color": colorType{},
				"direction":        enum("ltr", "rtl"),
			},
			defaults: map[string]string{"direction": "ltr"},
		},
		{
			name:    "mj-column",
			parents: []string{"mj-section", "mj-group"},
			attrs: merged(paddingAttrs(), borderAttrs(), map[string]attrType{
				"background-color":       colorType{},
				"inner-background-color": colorType{},
				"width":                  unit("px", "%"),
				"vertical-align":         valignType,
				"direction":              enum("ltr", "rtl"),
			}),
			defaults: map[string]string{"direction": "ltr", "vertical-align": "top"},
		},
		{
			name:    "mj-hero",
			parents: bodyLike,
			attrs: merged(paddingAttrs(), map[string]attrType{
				"background-color":    colorType{},
				"background-url":      stringType{},
				"background-height":   unit("px", "%"),
				"background-width":    unit("px", "%"),
				"background-position": stringType{},
				"height":              unit("px", "%"),
				"mode":                enum("fixed-height", "fluid-height"),
				"vertical-align":      valignType,
				"width":               unit("px"),
			}),
			defaults: map[string]string{
				"background-color": "#ffffff", "height": "0px", "mode": "fixed-height",
				"padding": "0px", "vertical-align": "top", "background-position": "center center",
			},
		},
		{
			name:    "mj-text",
			ending:  true,
			parents: columnLike,
			attrs: merged(paddingAttrs(), textAttrs(), map[string]attrType{
				"align":          enum("left", "right", "center", "justify"),
				"height":         unit("px", "%"),
				"vertical-align": valignType,
			}),
			defaults: map[string]string{
				"align": "left", "color": "#000000", "font-family": "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size": "13px", "line-height": "1", "padding": "10px 25px",
			},
		},
		{
			name:    "mj-button",
			ending:  true,
			parents: columnLike,
			attrs: merged(paddingAttrs(), textAttrs(), map[string]attrType{
				"align":            alignType,
				"background-color": colorType{},
				"border":           stringType{},
				"border-radius":    stringType{},
				"height":           unit("px", "%"),
				"href":             stringType{},
				"inner-padding":    boxUnits,
				"rel":              stringType{},
				"target":           stringType{},
				"text-align":       alignType,
				"title":            stringType{},
				"vertical-align":   valignType,
				"width":            unit("px", "%"),
			}),
			defaults: map[string]string{
				"align": "center", "background-color": "#414141", "border": "none",
				"border-radius": "3px", "color": "#ffffff", "font-family": "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size": "13px", "font-weight": "normal", "inner-padding": "10px 25px",
				"line-height": "120%", "padding": "10px 25px", "target": "_blank",
				"text-decoration": "none", "text-transform": "none", "vertical-align": "middle",
			},
		},
		{
			name:    "mj-image",
			parents: columnLike,
			attrs: merged(paddingAttrs(), map[string]attrType{
				"alt":                        stringType{},
				"align":                      alignType,
				"border":                     stringType{},
				"border-radius":              unitN(1, 4, "px", "%"),
				"container-background-color": colorType{},
				"height":                     unit("px", "auto"),
				"href":                       stringType{},
				"name":                       stringType{},
				"rel":                        stringType{},
				"src":                        stringType{},
				"srcset":                     stringType{},
				"target":                     stringType{},
				"title":                      stringType{},
				"width":                      unit("px"),
			}),
			defaults: map[string]string{
				"align": "center", "border": "0", "height": "auto", "padding": "10px 25px", "target": "_blank",
			},
		},
		{
			name:    "mj-divider",
			parents: columnLike,
			attrs: merged(paddingAttrs(), map[string]attrType{
				"align":                      alignType,
				"border-color":               colorType{},
				"border-style":               stringType{},
				"border-width":               unit("px"),
				"container-background-color": colorType{},
				"width":                      unit("px", "%"),
			}),
			defaults: map[string]string{
				"align": "center", "border-color": "#000000", "border-style": "solid",
				"border-width": "4px", "padding": "10px 25px", "width": "100%",
			},
		},
		{
			name:    "mj-spacer",
			parents: columnLike,
			attrs: merged(paddingAttrs(), map[string]attrType{
				"container-background-color": colorType{},
				"height":                     unit("px", "%"),
			}),
			defaults: map[string]string{"height": "20px"},
		},
		{
			name:    "mj-table",
			ending:  true,
			parents: columnLike,
			attrs: merged(paddingAttrs(), textAttrs(), map[string]attrType{
				"align":        alignType,
				"border":       stringType{},
				"cellpadding":  integerType{},
				"cellspacing":  integerType{},
				"role":         enum("none", "presentation"),
				"table-layout": enum("auto", "fixed", "initial", "inherit"),
				"width":        unit("px", "%", "auto"),
			}),
			defaults: map[string]string{
				"align": "left", "border": "none", "cellpadding": "0", "cellspacing": "0",
				"color": "#000000", "font-family": "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size": "13px", "line-height": "22px", "padding": "10px 25px",
				"table-layout": "auto", "width": "100%",
			},
		},
	}

	reg := make(map[string]component, len(components))
	for _, c := range components {
		if c.defaults == nil {
			c.defaults = map[string]string{}
		}
		reg[c.name] = c
	}
	return reg
}

func isEndingTag(tag string) bool {
	c, ok := registry[tag]
	return ok && c.ending
}
