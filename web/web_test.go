package web

import (
	"bytes"
	"strings"
	"testing"

	"intellisql/models"
)

func TestPagesRender(t *testing.T) {
	tmpl, err := Pages()
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}

	for _, name := range []string{"home.html", "about.html", "query.html"} {
		var buf bytes.Buffer
		data := PageData{Page: strings.TrimSuffix(name, ".html")}
		if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if !strings.Contains(buf.String(), "Query Assistant") {
			t.Fatalf("%s is missing the sidebar", name)
		}
	}
}

func TestQueryPageRendersResult(t *testing.T) {
	tmpl, err := Pages()
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "query.html", PageData{
		Page: "query",
		SQL:  "SELECT * FROM STUDENT;",
		Result: &models.SQLResult{
			Columns: []string{"NAME", "MARKS"},
			Rows:    [][]interface{}{{"Krish", int64(90)}, {nil, int64(1)}},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Generated SQL:", "Query Result:", "<th>NAME</th>", "<td>Krish</td>", "<td>90</td>", "<td>NULL</td>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestHighlightSQLEscapes(t *testing.T) {
	out := string(HighlightSQL("SELECT '<b>' FROM STUDENT"))
	if strings.Contains(out, "<b>") {
		t.Fatalf("markup not escaped: %s", out)
	}
	if !strings.Contains(out, "STUDENT") {
		t.Fatalf("statement text missing: %s", out)
	}
}

func TestStaticHasStylesheet(t *testing.T) {
	f, err := Static().Open("style.css")
	if err != nil {
		t.Fatalf("open style.css: %v", err)
	}
	f.Close()
}
