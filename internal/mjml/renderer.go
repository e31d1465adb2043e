// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mjml

import (
	"context"
	"html"
	"slices"
	"strconv"
	"strings"
)

const (
	defaultBodyWidth  = 600
	defaultBreakpoint = "480px"
	defaultLang       = "und"
	defaultDir        = "auto"
)

var builtinFonts = map[string]string{
	"Open Sans":  "https://fonts.googleapis.com/css?family=Open+Sans:300,400,500,700",
	"Droid Sans": "https://fonts.googleapis.com/css?family=Droid+Sans:300,400,500,700",
	"Lato":       "https://fonts.googleapis.com/css?family=Lato:300,400,500,700",
	"Roboto":     "https://fonts.googleapis.com/css?family=Roboto:300,400,500,700",
	"Ubuntu":     "https://fonts.googleapis.com/css?family=Ubuntu:300,400,500,700",
}

const resetStyles = `#outlook a { padding:0; }
body { margin:0;padding:0;-webkit-text-size-adjust:100%;-ms-text-size-adjust:100%; }
table, td { border-collapse:collapse;mso-table-lspace:0pt;mso-table-rspace:0pt; }
img { border:0;height:auto;line-height:100%; outline:none;text-decoration:none;-ms-interpolation-mode:bicubic; }
p { display:block;margin:13px 0; }`

type mediaQuery struct {
	class string
	width string
}

type renderer struct {
	ctx  context.Context
	head *headAttributes
	err  error

	title      string
	preview    string
	breakpoint string
	lang       string
	dir        string
	fonts      map[string]string
	usedFonts  []string
	styles     []string
	headRaw    []string
	queries    []mediaQuery
	seenQuery  map[string]bool
	body       strings.Builder
}

// render produces the HTML document for root.
func render(ctx context.Context, root *node) (string, error) {
	r := &renderer{
		ctx:        ctx,
		head:       newHeadAttributes(),
		breakpoint: defaultBreakpoint,
		lang:       defaultLang,
		dir:        defaultDir,
		fonts:      map[string]string{},
		seenQuery:  map[string]bool{},
	}

	if root.tag == "mjml" {
		if v, ok := root.attr("lang"); ok {
			r.lang = v
		}
		if v, ok := root.attr("dir"); ok {
			r.dir = v
		}
	}

	if head := root.child("mj-head"); head != nil {
		r.readHead(head)
	}

	var bodyAttrs map[string]string
	if body := root.child("mj-body"); body != nil {
		bodyAttrs = r.head.resolve(body)
		width := pxValue(bodyAttrs["width"])
		if width == 0 {
			width = defaultBodyWidth
		}
		for _, c := range body.children {
			r.bodyChild(c, width)
		}
	}

	if r.err != nil {
		return "", r.err
	}
	return r.document(bodyAttrs), nil
}

func (r *renderer) alive() bool {
	if r.err != nil {
		return false
	}
	if err := r.ctx.Err(); err != nil {
		r.err = err
		return false
	}
	return true
}

func (r *renderer) readHead(head *node) {
	for _, c := range head.children {
		switch c.tag {
		case "mj-attributes":
			r.head.load(c)
		case "mj-title":
			r.title = c.content
		case "mj-preview":
			r.preview = c.content
		case "mj-breakpoint":
			if v, ok := c.attr("width"); ok {
				r.breakpoint = v
			}
		case "mj-font":
			name, _ := c.attr("name")
			href, _ := c.attr("href")
			if name != "" && href != "" {
				r.fonts[name] = href
			}
		case "mj-style":
			r.styles = append(r.styles, c.content)
		case "mj-raw":
			r.headRaw = append(r.headRaw, c.content)
		case "":
			if c.comment {
				r.headRaw = append(r.headRaw, "<!--"+c.content+"-->")
			}
		}
	}
}

func (r *renderer) useFonts(family string) {
	for _, f := range strings.Split(family, ",") {
		name := strings.Trim(strings.TrimSpace(f), `"'`)
		if _, ok := r.fontHref(name); !ok {
			continue
		}
		if !slices.Contains(r.usedFonts, name) {
			r.usedFonts = append(r.usedFonts, name)
		}
	}
}

func (r *renderer) fontHref(name string) (string, bool) {
	if href, ok := r.fonts[name]; ok {
		return href, true
	}
	href, ok := builtinFonts[name]
	return href, ok
}

func (r *renderer) addQuery(w widthSpec, prefix string) string {
	class := w.className(prefix)
	if !r.seenQuery[class] {
		r.seenQuery[class] = true
		r.queries = append(r.queries, mediaQuery{class: class, width: w.css()})
	}
	return class
}

func (r *renderer) write(parts ...string) {
	for _, p := range parts {
		r.body.WriteString(p)
	}
}

func (r *renderer) comment(n *node) {
	r.write("<!--", n.content, "-->")
}

func (r *renderer) bodyChild(n *node, width int) {
	if !r.alive() {
		return
	}
	switch {
	case n.comment:
		r.comment(n)
	case n.tag == "mj-section":
		r.section(n, width)
	case n.tag == "mj-wrapper":
		r.wrapper(n, width)
	case n.tag == "mj-hero":
		r.hero(n, width)
	case n.tag == "mj-raw":
		r.write(n.content)
	}
}

func (r *renderer) sectionOpen(a map[string]string, width int) {
	bg := background(a)
	r.write(
		`<!--[if mso | IE]><table align="center" border="0" cellpadding="0" cellspacing="0" class="`, outlookClass(a), `" role="presentation" style="width:`, itoa(width), `px;" width="`, itoa(width), `" ><tr><td style="line-height:0px;font-size:0px;mso-line-height-rule:exactly;"><![endif]-->`,
		`<div`, classAttr(a["css-class"]), ` style="`, css("background", bg, "background-color", a["background-color"], "margin", "0px auto", "border-radius", a["border-radius"], "max-width", itoa(width)+"px"), `">`,
		`<table align="center" border="0" cellpadding="0" cellspacing="0" role="presentation" style="`, css("background", bg, "background-color", a["background-color"], "width", "100%", "border-radius", a["border-radius"]), `">`,
		`<tbody><tr><td style="`, css(
			"border", a["border"], "border-bottom", a["border-bottom"], "border-left", a["border-left"],
			"border-right", a["border-right"], "border-top", a["border-top"], "direction", a["direction"],
			"font-size", "0px", "padding", a["padding"], "padding-bottom", a["padding-bottom"],
			"padding-left", a["padding-left"], "padding-right", a["padding-right"],
			"padding-top", a["padding-top"], "text-align", a["text-align"],
		), `">`,
	)
}

func (r *renderer) sectionClose() {
	r.write(`</td></tr></tbody></table></div><!--[if mso | IE]></td></tr></table><![endif]-->`)
}

func (r *renderer) section(n *node, width int) {
	a := r.head.resolve(n)
	box := width - paddingPx(a, "left") - paddingPx(a, "right")

	r.sectionOpen(a, width)
	r.write(`<!--[if mso | IE]><table role="presentation" border="0" cellpadding="0" cellspacing="0"><tr><![endif]-->`)
	r.columns(n, box)
	r.write(`<!--[if mso | IE]></tr></table><![endif]-->`)
	r.sectionClose()
}

func (r *renderer) wrapper(n *node, width int) {
	a := r.head.resolve(n)
	box := width - paddingPx(a, "left") - paddingPx(a, "right")

	r.sectionOpen(a, width)
	for _, c := range n.children {
		if !r.alive() {
			return
		}
		switch {
		case c.comment:
			r.comment(c)
		case c.tag == "mj-section":
			r.section(c, box)
		case c.tag == "mj-raw":
			r.write(c.content)
		}
	}
	r.sectionClose()
}

// columns lays out the mj-column and mj-group children of n inside box
// pixels. Columns without a width share the space left equally.
func (r *renderer) columns(n *node, box int) {
	count := 0
	for _, c := range n.children {
		if c.tag == "mj-column" || c.tag == "mj-group" {
			count++
		}
	}

	for _, c := range n.children {
		if !r.alive() {
			return
		}
		switch {
		case c.comment:
			r.comment(c)
		case c.tag == "mj-raw":
			r.write(c.content)
		case c.tag == "mj-column":
			r.column(c, columnWidth(r.head.resolve(c), count), box)
		case c.tag == "mj-group":
			r.group(c, columnWidth(r.head.resolve(c), count), box)
		}
	}
}

func columnWidth(a map[string]string, siblings int) widthSpec {
	if w, ok := parseWidth(a["width"]); ok && a["width"] != "" {
		return w
	}
	if siblings < 1 {
		siblings = 1
	}
	return widthSpec{value: 100 / float64(siblings), percent: true}
}

func (r *renderer) group(n *node, w widthSpec, box int) {
	a := r.head.resolve(n)
	class := r.addQuery(w, "mj-column")
	groupPx := w.px(box)

	r.write(
		`<!--[if mso | IE]><td style="vertical-align:`, orDefault(a["vertical-align"], "top"), `;width:`, itoa(groupPx), `px;" ><![endif]-->`,
		`<div class="`, class, ` mj-outlook-group-fix`, spaced(a["css-class"]), `" style="`, css(
			"font-size", "0", "line-height", "0", "text-align", "left", "display", "inline-block",
			"width", "100%", "direction", a["direction"], "vertical-align", a["vertical-align"],
			"background-color", a["background-color"],
		), `">`,
		`<!--[if mso | IE]><table border="0" cellpadding="0" cellspacing="0" role="presentation" ><tr><![endif]-->`,
	)

	count := len(n.elements())
	for _, c := range n.children {
		if !r.alive() {
			return
		}
		switch {
		case c.comment:
			r.comment(c)
		case c.tag == "mj-column":
			r.column(c, columnWidth(r.head.resolve(c), count), groupPx)
		case c.tag == "mj-raw":
			r.write(c.content)
		}
	}

	r.write(`<!--[if mso | IE]></tr></table><![endif]--></div><!--[if mso | IE]></td><![endif]-->`)
}

func (r *renderer) column(n *node, w widthSpec, box int) {
	a := r.head.resolve(n)
	class := r.addQuery(w, "mj-column")
	colPx := w.px(box)
	inner := colPx - paddingPx(a, "left") - paddingPx(a, "right")
	valign := orDefault(a["vertical-align"], "top")
	hasPadding := a["padding"] != "" || a["padding-top"] != "" || a["padding-bottom"] != "" ||
		a["padding-left"] != "" || a["padding-right"] != ""

	r.write(
		`<!--[if mso | IE]><td class="`, outlookClass(a), `" style="vertical-align:`, valign, `;width:`, itoa(colPx), `px;" ><![endif]-->`,
		`<div class="`, class, ` mj-outlook-group-fix`, spaced(a["css-class"]), `" style="`, css(
			"font-size", "0px", "text-align", "left", "direction", a["direction"],
			"display", "inline-block", "vertical-align", valign, "width", "100%",
		), `">`,
	)

	boxStyle := css(
		"background-color", a["background-color"], "border", a["border"],
		"border-bottom", a["border-bottom"], "border-left", a["border-left"],
		"border-radius", a["border-radius"], "border-right", a["border-right"],
		"border-top", a["border-top"], "vertical-align", valign,
	)

	if hasPadding {
		r.write(
			`<table border="0" cellpadding="0" cellspacing="0" role="presentation" width="100%"><tbody><tr><td style="`,
			boxStyle, css("padding", a["padding"], "padding-bottom", a["padding-bottom"], "padding-left", a["padding-left"],
				"padding-right", a["padding-right"], "padding-top", a["padding-top"]),
			`">`,
			`<table border="0" cellpadding="0" cellspacing="0" role="presentation" style="`,
			css("background-color", a["inner-background-color"]), `" width="100%">`,
		)
	} else {
		r.write(`<table border="0" cellpadding="0" cellspacing="0" role="presentation" style="`, boxStyle, `" width="100%">`)
	}

	r.write(`<tbody>`)
	r.contents(n, inner)
	r.write(`</tbody></table>`)
	if hasPadding {
		r.write(`</td></tr></tbody></table>`)
	}
	r.write(`</div><!--[if mso | IE]></td><![endif]-->`)
}

func (r *renderer) hero(n *node, width int) {
	a := r.head.resolve(n)
	inner := width - paddingPx(a, "left") - paddingPx(a, "right")
	url := a["background-url"]

	bg := a["background-color"]
	if url != "" {
		bg += " url('" + url + "') no-repeat " + a["background-position"] + " / cover"
	}

	height := ""
	if a["mode"] == "fixed-height" && pxValue(a["height"]) > 0 {
		height = a["height"]
	}

	r.write(
		`<!--[if mso | IE]><table align="center" border="0" cellpadding="0" cellspacing="0" role="presentation" style="width:`, itoa(width), `px;" width="`, itoa(width), `" ><tr><td style="line-height:0;font-size:0;mso-line-height-rule:exactly;"><![endif]-->`,
		`<div`, classAttr(a["css-class"]), ` style="margin:0 auto;max-width:`, itoa(width), `px;">`,
		`<table border="0" cellpadding="0" cellspacing="0" role="presentation" style="width:100%;"><tbody>`,
		`<tr style="vertical-align:top;"><td`, optAttr("background", url), ` style="`, css(
			"background", bg, "background-position", a["background-position"],
			"background-repeat", "no-repeat", "padding", a["padding"],
			"padding-bottom", a["padding-bottom"], "padding-left", a["padding-left"],
			"padding-right", a["padding-right"], "padding-top", a["padding-top"],
			"vertical-align", a["vertical-align"], "height", height,
		), `"`, optAttr("height", strings.TrimSuffix(height, "px")), `>`,
		`<div class="mj-hero-content" style="margin:0px auto;">`,
		`<table border="0" cellpadding="0" cellspacing="0" role="presentation" style="width:100%;margin:0px;"><tbody><tr><td style="">`,
		`<table border="0" cellpadding="0" cellspacing="0" role="presentation" style="width:100%;margin:0px;"><tbody>`,
	)
	r.contents(n, inner)
	r.write(
		`</tbody></table></td></tr></tbody></table></div>`,
		`</td></tr></tbody></table></div><!--[if mso | IE]></td></tr></table><![endif]-->`,
	)
}

// contents renders the leaf components of a column or hero as table rows.
func (r *renderer) contents(n *node, box int) {
	for _, c := range n.children {
		if !r.alive() {
			return
		}
		if c.comment {
			r.comment(c)
			continue
		}
		if c.tag == "mj-raw" {
			r.write(c.content)
			continue
		}

		a := r.head.resolve(c)
		var leaf string
		switch c.tag {
		case "mj-text":
			leaf = r.text(c, a)
		case "mj-button":
			leaf = r.button(c, a)
		case "mj-image":
			leaf = r.image(a, box-paddingPx(a, "left")-paddingPx(a, "right"))
		case "mj-divider":
			leaf = divider(a)
		case "mj-spacer":
			leaf = spacer(a)
		case "mj-table":
			leaf = r.table(c, a)
		default:
			continue
		}

		r.write(
			`<tr><td align="`, orDefault(a["align"], "left"), `"`, classAttr(a["css-class"]), ` style="`, css(
				"background", a["container-background-color"], "font-size", "0px",
				"padding", a["padding"], "padding-top", a["padding-top"],
				"padding-right", a["padding-right"], "padding-bottom", a["padding-bottom"],
				"padding-left", a["padding-left"], "word-break", "break-word",
			), `">`, leaf, `</td></tr>`,
		)
	}
}

func (r *renderer) text(n *node, a map[string]string) string {
	r.useFonts(a["font-family"])
	return `<div style="` + css(
		"font-family", a["font-family"], "font-size", a["font-size"], "font-style", a["font-style"],
		"font-weight", a["font-weight"], "letter-spacing", a["letter-spacing"],
		"line-height", a["line-height"], "text-align", a["align"],
		"text-decoration", a["text-decoration"], "text-transform", a["text-transform"],
		"color", a["color"], "height", a["height"],
	) + `">` + n.content + `</div>`
}

func (r *renderer) button(n *node, a map[string]string) string {
	r.useFonts(a["font-family"])
	bg := a["background-color"]

	linkStyle := css(
		"display", "inline-block", "width", a["width"], "background", bg, "color", a["color"],
		"font-family", a["font-family"], "font-size", a["font-size"], "font-style", a["font-style"],
		"font-weight", a["font-weight"], "line-height", a["line-height"],
		"letter-spacing", a["letter-spacing"], "margin", "0", "text-decoration", a["text-decoration"],
		"text-transform", a["text-transform"], "padding", a["inner-padding"],
		"mso-padding-alt", "0px", "border-radius", a["border-radius"],
	)

	var inner string
	if href := a["href"]; href != "" {
		inner = `<a href="` + html.EscapeString(href) + `"` + optAttr("rel", a["rel"]) +
			optAttr("title", a["title"]) + ` style="` + linkStyle + `"` +
			optAttr("target", a["target"]) + `>` + n.content + `</a>`
	} else {
		inner = `<p style="` + linkStyle + `">` + n.content + `</p>`
	}

	return `<table border="0" cellpadding="0" cellspacing="0" role="presentation" style="` +
		css("border-collapse", "separate", "width", a["width"], "line-height", "100%") + `"><tbody><tr>` +
		`<td align="center" bgcolor="` + html.EscapeString(bg) + `" role="presentation" style="` + css(
		"border", a["border"], "border-bottom", a["border-bottom"], "border-left", a["border-left"],
		"border-radius", a["border-radius"], "border-right", a["border-right"],
		"border-top", a["border-top"], "cursor", "auto", "font-style", a["font-style"],
		"height", a["height"], "mso-padding-alt", a["inner-padding"], "text-align", a["text-align"],
		"background", bg,
	) + `" valign="` + a["vertical-align"] + `">` + inner + `</td></tr></tbody></table>`
}

func (r *renderer) image(a map[string]string, box int) string {
	width := box
	if w := pxValue(a["width"]); w > 0 && w < box {
		width = w
	}

	img := `<img alt="` + html.EscapeString(a["alt"]) + `" height="` + html.EscapeString(strings.TrimSuffix(a["height"], "px")) +
		`" src="` + html.EscapeString(a["src"]) + `"` + optAttr("srcset", a["srcset"]) +
		` style="` + css(
		"border", a["border"], "border-radius", a["border-radius"], "display", "block",
		"outline", "none", "text-decoration", "none", "height", a["height"],
		"width", "100%", "font-size", "13px",
	) + `"` + optAttr("title", a["title"]) + ` width="` + itoa(width) + `" />`

	if href := a["href"]; href != "" {
		img = `<a href="` + html.EscapeString(href) + `"` + optAttr("target", a["target"]) +
			optAttr("rel", a["rel"]) + optAttr("name", a["name"]) + `>` + img + `</a>`
	}

	return `<table border="0" cellpadding="0" cellspacing="0" role="presentation" style="border-collapse:collapse;border-spacing:0px;"><tbody><tr>` +
		`<td style="width:` + itoa(width) + `px;">` + img + `</td></tr></tbody></table>`
}

func divider(a map[string]string) string {
	margin := "0px auto"
	switch a["align"] {
	case "left":
		margin = "0px"
	case "right":
		margin = "0px 0px 0px auto"
	}
	return `<p style="` + css(
		"border-top", strings.Join([]string{a["border-style"], a["border-width"], a["border-color"]}, " "),
		"font-size", "1px", "margin", margin, "width", a["width"],
	) + `"></p>`
}

func spacer(a map[string]string) string {
	return `<div style="` + css("height", a["height"], "line-height", a["height"]) + `">&#8202;</div>`
}

func (r *renderer) table(n *node, a map[string]string) string {
	r.useFonts(a["font-family"])
	width := a["width"]
	if width == "" {
		width = "100%"
	}
	return `<table cellpadding="` + a["cellpadding"] + `" cellspacing="` + a["cellspacing"] +
		`"` + optAttr("role", a["role"]) + ` width="` + strings.TrimSuffix(width, "px") + `" border="0" style="` + css(
		"color", a["color"], "font-family", a["font-family"], "font-size", a["font-size"],
		"line-height", a["line-height"], "table-layout", a["table-layout"], "width", width,
		"border", a["border"],
	) + `">` + n.content + `</table>`
}

// document assembles head and body once the body has been rendered, so the
// media queries and fonts it collected are known.
func (r *renderer) document(bodyAttrs map[string]string) string {
	var b strings.Builder

	b.WriteString(`<!doctype html>`)
	b.WriteString(`<html lang="` + html.EscapeString(r.lang) + `" dir="` + html.EscapeString(r.dir) + `" xmlns="http://www.w3.org/1999/xhtml" xmlns:v="urn:schemas-microsoft-com:vml" xmlns:o="urn:schemas-microsoft-com:office:office">`)
	b.WriteString(`<head><title>` + r.title + `</title>`)
	b.WriteString(`<!--[if !mso]><!--><meta http-equiv="X-UA-Compatible" content="IE=edge"><!--<![endif]-->`)
	b.WriteString(`<meta http-equiv="Content-Type" content="text/html; charset=UTF-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(`<style type="text/css">` + resetStyles + `</style>`)
	b.WriteString(`<!--[if mso]><noscript><xml><o:OfficeDocumentSettings><o:AllowPNG/><o:PixelsPerInch>96</o:PixelsPerInch></o:OfficeDocumentSettings></xml></noscript><![endif]-->`)
	b.WriteString(`<!--[if lte mso 11]><style type="text/css">.mj-outlook-group-fix { width:100% !important; }</style><![endif]-->`)

	if len(r.usedFonts) > 0 {
		b.WriteString(`<!--[if !mso]><!-->`)
		for _, name := range r.usedFonts {
			href, _ := r.fontHref(name)
			b.WriteString(`<link href="` + html.EscapeString(href) + `" rel="stylesheet" type="text/css">`)
		}
		b.WriteString(`<style type="text/css">`)
		for _, name := range r.usedFonts {
			href, _ := r.fontHref(name)
			b.WriteString(`@import url(` + href + `);`)
		}
		b.WriteString(`</style><!--<![endif]-->`)
	}

	if len(r.queries) > 0 {
		b.WriteString(`<style type="text/css">@media only screen and (min-width:` + r.breakpoint + `) { `)
		for _, q := range r.queries {
			b.WriteString(`.` + q.class + ` { width:` + q.width + ` !important; max-width: ` + q.width + `; } `)
		}
		b.WriteString(`}</style>`)
	}

	for _, s := range r.styles {
		b.WriteString(`<style type="text/css">` + s + `</style>`)
	}
	for _, raw := range r.headRaw {
		b.WriteString(raw)
	}
	b.WriteString(`</head>`)

	bg := bodyAttrs["background-color"]
	b.WriteString(`<body style="` + css("word-spacing", "normal", "background-color", bg) + `">`)
	if r.preview != "" {
		b.WriteString(`<div style="display:none;font-size:1px;color:#ffffff;line-height:1px;max-height:0px;max-width:0px;opacity:0;overflow:hidden;">` + r.preview + `</div>`)
	}
	b.WriteString(`<div` + classAttr(bodyAttrs["css-class"]) + ` style="` + css("background-color", bg) + `" lang="` +
		html.EscapeString(r.lang) + `" dir="` + html.EscapeString(r.dir) + `">`)
	b.WriteString(r.body.String())
	b.WriteString(`</div></body></html>`)

	return b.String()
}

// css renders name/value pairs as an inline style, skipping empty values.
func css(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if v := strings.TrimSpace(pairs[i+1]); v != "" {
			b.WriteString(pairs[i])
			b.WriteByte(':')
			b.WriteString(html.EscapeString(v))
			b.WriteByte(';')
		}
	}
	return b.String()
}

func background(a map[string]string) string {
	url := a["background-url"]
	if url == "" {
		return ""
	}
	return strings.TrimSpace(a["background-color"] + " url('" + url + "') " +
		orDefault(a["background-position"], "top center") + " / " +
		orDefault(a["background-size"], "auto") + " " + orDefault(a["background-repeat"], "repeat"))
}

func optAttr(name, value string) string {
	if value == "" {
		return ""
	}
	return ` ` + name + `="` + html.EscapeString(value) + `"`
}

func classAttr(class string) string {
	return optAttr("class", class)
}

func outlookClass(a map[string]string) string {
	if c := a["css-class"]; c != "" {
		return html.EscapeString(c) + "-outlook"
	}
	return ""
}

func spaced(class string) string {
	if class == "" {
		return ""
	}
	return " " + html.EscapeString(class)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
