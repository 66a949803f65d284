package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"intellisql/models"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// PageData is what every page template is executed with. Only the query
// page uses the fields past Page.
type PageData struct {
	Page     string
	Question string
	SQL      string
	Warning  string
	Error    string
	Result   *models.SQLResult
}

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages parses the page templates with the helpers they use.
func Pages() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"highlightSQL": HighlightSQL,
		"cell":         Cell,
	}).ParseFS(templateFS, "templates/*.html")
}

// Static returns the stylesheet and images served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// HighlightSQL renders sql as an HTML code block with inline colors.
// If highlighting fails the escaped plain text is returned instead.
func HighlightSQL(sql string) template.HTML {
	lexer := lexers.Get("sql")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, sql)
	if err == nil {
		var buf bytes.Buffer
		formatter := chromahtml.New(chromahtml.WithClasses(false), chromahtml.TabWidth(4))
		if err = formatter.Format(&buf, style, iterator); err == nil {
			return template.HTML(buf.String())
		}
	}

	return template.HTML("<pre><code>" + template.HTMLEscapeString(sql) + "</code></pre>")
}

// Cell formats one result value for the table.
func Cell(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}
