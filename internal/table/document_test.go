package table

import (
	"strings"
	"testing"

	"github.com/ibzib/htmltable/internal/config"
	"golang.org/x/net/html"
)

func TestRender_HeaderAndBody(t *testing.T) {
	doc, err := Build([]string{"a\tb", "1\t2"}, config.Default())
	if err != nil {
		t.Fatal(err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() failed: %v", err)
	}

	want := "<table><tr><th>a</th><th>b</th></tr><tr><td>1</td><td>2</td></tr></table>\n"
	if string(out) != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestRender_ShadedRow(t *testing.T) {
	cfg := config.Default()
	cfg.WriteHeader = false
	cfg.ShadeRows = true
	cfg.ShadeColor = "c1c2c3"

	doc, _ := Build([]string{"1", "2"}, cfg)
	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	want := `<table><tr style="background-color: #c1c2c3;"><td>1</td></tr><tr><td>2</td></tr></table>` + "\n"
	if string(out) != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestRender_EscapesText(t *testing.T) {
	cfg := config.Default()
	cfg.WriteHeader = false

	doc, _ := Build([]string{"<b>&\ttom & jerry"}, cfg)
	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	s := string(out)
	if strings.Contains(s, "<b>") {
		t.Errorf("markup in cell text was not escaped: %s", s)
	}
	if !strings.Contains(s, "<td>&lt;b&gt;&amp;</td>") {
		t.Errorf("unexpected escaping: %s", s)
	}
}

func TestRender_ParsesBack(t *testing.T) {
	doc, _ := Build([]string{"x\ty", "1\t2", "3"}, config.Default())
	out, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	nodes, err := html.ParseFragment(strings.NewReader(string(out)), &html.Node{
		Type: html.ElementNode, Data: "body",
	})
	if err != nil {
		t.Fatalf("ParseFragment() failed: %v", err)
	}

	var ths, tds int
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "th":
				ths++
			case "td":
				tds++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	if ths != 2 || tds != 3 {
		t.Errorf("parsed th=%d td=%d, want 2 and 3", ths, tds)
	}
}

func TestNode_EmptyCellHasNoText(t *testing.T) {
	doc := &Document{Rows: []Row{{Cells: []Cell{{Text: ""}}}}}
	td := doc.Node().FirstChild.FirstChild
	if td.Data != "td" {
		t.Fatalf("got %q, want td", td.Data)
	}
	if td.FirstChild != nil {
		t.Error("empty cell should have no children")
	}
}
