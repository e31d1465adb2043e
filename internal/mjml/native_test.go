package mjml

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloDoc = `<mjml><mj-body><mj-section><mj-column><mj-text>hello</mj-text></mj-column></mj-section></mj-body></mjml>`

const illegalAttrDoc = `<mjml><mj-body><mj-section><mj-column><mj-text foo=bar>hello</mj-text></mj-column></mj-section></mj-body></mjml>`

func compileNative(t *testing.T, doc string, opts Options) (Result, error) {
	t.Helper()
	return NewNativeCompiler().Compile(context.Background(), doc, opts)
}

func TestNativeCompiler_ValidDocument(t *testing.T) {
	res, err := compileNative(t, helloDoc, Options{KeepComments: true, ValidationLevel: ValidationStrict})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.HTML, "<!doctype html>"))
	assert.Contains(t, res.HTML, ">hello</div>")
	assert.Contains(t, res.HTML, "mj-column-per-100")
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors)
}

func TestNativeCompiler_ValidationLevels(t *testing.T) {
	wantDiag := Diagnostic{
		Line:             1,
		Message:          "Attribute foo is illegal",
		TagName:          "mj-text",
		FormattedMessage: "Line 1 (mj-text) — Attribute foo is illegal",
	}

	t.Run("strict fails", func(t *testing.T) {
		_, err := compileNative(t, illegalAttrDoc, Options{ValidationLevel: ValidationStrict})

		var compileErr *CompileError
		require.ErrorAs(t, err, &compileErr)
		assert.Equal(t, []Diagnostic{wantDiag}, compileErr.Errors)
		assert.Contains(t, compileErr.Error(), "Attribute foo is illegal")
	})

	t.Run("soft returns html and diagnostics", func(t *testing.T) {
		res, err := compileNative(t, illegalAttrDoc, Options{ValidationLevel: ValidationSoft})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.HTML, "<!doctype html>"))
		assert.Equal(t, []Diagnostic{wantDiag}, res.Errors)
	})

	t.Run("unset level behaves like soft", func(t *testing.T) {
		res, err := compileNative(t, illegalAttrDoc, Options{})

		require.NoError(t, err)
		assert.Len(t, res.Errors, 1)
	})

	t.Run("skip ignores", func(t *testing.T) {
		res, err := compileNative(t, illegalAttrDoc, Options{ValidationLevel: ValidationSkip})

		require.NoError(t, err)
		assert.Empty(t, res.Errors)
		assert.Contains(t, res.HTML, "hello")
	})
}

func TestNativeCompiler_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		filePath string
		want     []Diagnostic
	}{
		{
			name: "element on a later line",
			doc: "<mjml>\n  <mj-body>\n    <mj-section>\n      <mj-column>\n        <mj-text foo=\"x\">hi</mj-text>\n" +
				"      </mj-column>\n    </mj-section>\n  </mj-body>\n</mjml>",
			want: []Diagnostic{{
				Line: 5, Message: "Attribute foo is illegal", TagName: "mj-text",
				FormattedMessage: "Line 5 (mj-text) — Attribute foo is illegal",
			}},
		},
		{
			name:     "file path is reported",
			doc:      illegalAttrDoc,
			filePath: "/tmp/mail.mjml",
			want: []Diagnostic{{
				Line: 1, Message: "Attribute foo is illegal", TagName: "mj-text",
				FormattedMessage: "Line 1 of /tmp/mail.mjml (mj-text) — Attribute foo is illegal",
			}},
		},
		{
			name: "wrong parent",
			doc:  `<mjml><mj-body><mj-column><mj-text>x</mj-text></mj-column></mj-body></mjml>`,
			want: []Diagnostic{{
				Line: 1, Message: "mj-column cannot be used inside mj-body, only inside: mj-section, mj-group", TagName: "mj-column",
				FormattedMessage: "Line 1 (mj-column) — mj-column cannot be used inside mj-body, only inside: mj-section, mj-group",
			}},
		},
		{
			name: "unknown element",
			doc:  `<mjml><mj-body><mj-section><mj-column><mj-foo></mj-foo></mj-column></mj-section></mj-body></mjml>`,
			want: []Diagnostic{{
				Line: 1, Message: "Element mj-foo doesn't exist or is not registered", TagName: "mj-foo",
				FormattedMessage: "Line 1 (mj-foo) — Element mj-foo doesn't exist or is not registered",
			}},
		},
		{
			name: "invalid attribute value",
			doc:  `<mjml><mj-body><mj-section padding="wide"></mj-section></mj-body></mjml>`,
			want: []Diagnostic{{
				Line: 1, Message: "Attribute padding has invalid value: wide for type unit(px,%){1,4}", TagName: "mj-section",
				FormattedMessage: "Line 1 (mj-section) — Attribute padding has invalid value: wide for type unit(px,%){1,4}",
			}},
		},
		{
			name: "mj-attributes children are not validated",
			doc:  `<mjml><mj-head><mj-attributes><mj-text anything="goes" /><mj-class name="big" font-size="30px" /></mj-attributes></mj-head><mj-body></mj-body></mjml>`,
			want: []Diagnostic{},
		},
		{
			name: "global attributes are accepted",
			doc:  `<mjml><mj-body><mj-section css-class="hero" mj-class="big"></mj-section></mj-body></mjml>`,
			want: []Diagnostic{},
		},
		{
			name: "non mjml root is not parent-checked",
			doc:  `<mj-text>hello</mj-text>`,
			want: []Diagnostic{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := compileNative(t, tt.doc, Options{ValidationLevel: ValidationSoft, FilePath: tt.filePath})

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Errors)
		})
	}
}

func TestNativeCompiler_Malformed(t *testing.T) {
	for _, doc := range []string{"", "   \n\t", "just some text", "<!-- only a comment -->"} {
		t.Run(doc, func(t *testing.T) {
			_, err := compileNative(t, doc, Options{ValidationLevel: ValidationSoft, KeepComments: true})

			var compileErr *CompileError
			require.ErrorAs(t, err, &compileErr)
			assert.Equal(t, MalformedMessage, compileErr.Message)
			assert.Empty(t, compileErr.Errors)
		})
	}
}

func TestNativeCompiler_RawContentPassesThrough(t *testing.T) {
	doc := `<mjml><mj-body><mj-section><mj-column>
<mj-text><p>Hello <b>World</b><br/></p></mj-text>
<mj-button href="https://example.com?a=1&b=2">Click <i>me</i></mj-button>
</mj-column></mj-section></mj-body></mjml>`

	res, err := compileNative(t, doc, Options{ValidationLevel: ValidationStrict})

	require.NoError(t, err)
	assert.Contains(t, res.HTML, "<p>Hello <b>World</b><br/></p>")
	assert.Contains(t, res.HTML, "Click <i>me</i></a>")
	assert.Contains(t, res.HTML, `href="https://example.com?a=1&amp;b=2"`)
}

func TestNativeCompiler_Comments(t *testing.T) {
	doc := `<mjml><mj-body><!-- top --><mj-section><mj-column><mj-text>a<!-- inner -->b</mj-text></mj-column></mj-section></mj-body></mjml>`

	kept, err := compileNative(t, doc, Options{KeepComments: true})
	require.NoError(t, err)
	assert.Contains(t, kept.HTML, "<!-- top -->")
	assert.Contains(t, kept.HTML, "a<!-- inner -->b")

	dropped, err := compileNative(t, doc, Options{KeepComments: false})
	require.NoError(t, err)
	assert.NotContains(t, dropped.HTML, "top -->")
	assert.Contains(t, dropped.HTML, ">ab</div>")
}

func TestNativeCompiler_Head(t *testing.T) {
	doc := `<mjml lang="en">
  <mj-head>
    <mj-title>Weekly &amp; news</mj-title>
    <mj-preview>Preview text</mj-preview>
    <mj-breakpoint width="320px" />
    <mj-font name="Raleway" href="https://fonts.example.com/raleway.css" />
    <mj-attributes>
      <mj-all font-family="Raleway, Arial" />
      <mj-text color="#ff0000" />
      <mj-class name="big" font-size="30px" />
    </mj-attributes>
    <mj-style>.x { color: red; }</mj-style>
  </mj-head>
  <mj-body background-color="#eeeeee">
    <mj-section>
      <mj-column><mj-text mj-class="big">one</mj-text></mj-column>
      <mj-column><mj-text color="#00ff00">two</mj-text></mj-column>
    </mj-section>
  </mj-body>
</mjml>`

	res, err := compileNative(t, doc, Options{ValidationLevel: ValidationStrict})
	require.NoError(t, err)

	assert.Contains(t, res.HTML, `<html lang="en"`)
	assert.Contains(t, res.HTML, "<title>Weekly &amp; news</title>")
	assert.Contains(t, res.HTML, ">Preview text</div>")
	assert.Contains(t, res.HTML, "@media only screen and (min-width:320px)")
	assert.Contains(t, res.HTML, ".mj-column-per-50 { width:50% !important; max-width: 50%; }")
	assert.Contains(t, res.HTML, `<link href="https://fonts.example.com/raleway.css"`)
	assert.Contains(t, res.HTML, "<style type=\"text/css\">.x { color: red; }</style>")
	assert.Contains(t, res.HTML, "background-color:#eeeeee;")
	assert.Contains(t, res.HTML, "font-size:30px;")
	assert.Contains(t, res.HTML, "color:#ff0000;\">one</div>")
	assert.Contains(t, res.HTML, "color:#00ff00;\">two</div>")
	assert.Equal(t, 1, strings.Count(res.HTML, ".mj-column-per-50 {"))
}

func TestNativeCompiler_ColumnWidths(t *testing.T) {
	doc := `<mjml><mj-body><mj-section>
<mj-column width="200px"><mj-image src="a.png" /></mj-column>
<mj-column><mj-divider /><mj-spacer /></mj-column>
<mj-column><mj-table><tr><td>1</td></tr></mj-table></mj-column>
</mj-section></mj-body></mjml>`

	res, err := compileNative(t, doc, Options{ValidationLevel: ValidationStrict})
	require.NoError(t, err)

	assert.Contains(t, res.HTML, ".mj-column-px-200 { width:200px !important; max-width: 200px; }")
	assert.Contains(t, res.HTML, "mj-column-per-33-333333333333336")
	assert.Contains(t, res.HTML, `src="a.png"`)
	assert.Contains(t, res.HTML, `width="150"`)
	assert.Contains(t, res.HTML, "<tr><td>1</td></tr></table>")
	assert.Contains(t, res.HTML, "&#8202;")
}

func TestNativeCompiler_Deterministic(t *testing.T) {
	doc := `<mjml><mj-body><mj-wrapper><mj-section><mj-group><mj-column><mj-text>a</mj-text></mj-column><mj-column><mj-text>b</mj-text></mj-column></mj-group></mj-section></mj-wrapper><mj-hero background-url="bg.png" height="200px"><mj-text>h</mj-text></mj-hero></mj-body></mjml>`

	first, err := compileNative(t, doc, Options{ValidationLevel: ValidationStrict})
	require.NoError(t, err)
	second, err := compileNative(t, doc, Options{ValidationLevel: ValidationStrict})
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Contains(t, first.HTML, "mj-hero-content")
}

func TestNativeCompiler_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNativeCompiler().Compile(ctx, helloDoc, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNativeCompiler_Version(t *testing.T) {
	assert.Equal(t, NativeVersion, NewNativeCompiler().Version())
}
