// =============================================================================
// HTML Table Converter - Table Document
// =============================================================================
//
// A Document is the in-memory table built from one input file. It is
// rendered as a single <table> element:
//
//   <table>
//     <tr><th>col1</th><th>col2</th></tr>                       <!-- header -->
//     <tr style="background-color: #dddddd;"><td>1</td>...</tr> <!-- shaded -->
//     <tr><td>3</td>...</tr>
//   </table>
//
// The node tree is built with golang.org/x/net/html and serialized with
// html.Render, which applies standard text escaping to cell content.
//
// =============================================================================

package table

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an ordered list of table rows.
type Document struct {
	Rows []Row
}

// Row is one <tr>. Header rows hold <th> cells, body rows hold <td> cells.
type Row struct {
	// Header marks the row as the table header.
	Header bool

	// Cells holds the row content in column order.
	Cells []Cell

	// Style is the inline style attribute. Empty means no attribute.
	Style string
}

// Cell holds the raw text of one column.
type Cell struct {
	Text string
}

// Counts returns the number of header and body rows.
func (d *Document) Counts() (header, body int) {
	for _, row := range d.Rows {
		if row.Header {
			header++
		} else {
			body++
		}
	}
	return header, body
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// Node builds the <table> element tree for the document.
func (d *Document) Node() *html.Node {
	tableNode := newElement(atom.Table)

	for _, row := range d.Rows {
		tr := newElement(atom.Tr)
		if row.Style != "" {
			tr.Attr = append(tr.Attr, html.Attribute{Key: "style", Val: row.Style})
		}

		cellAtom := atom.Td
		if row.Header {
			cellAtom = atom.Th
		}

		for _, cell := range row.Cells {
			c := newElement(cellAtom)
			if cell.Text != "" {
				c.AppendChild(&html.Node{Type: html.TextNode, Data: cell.Text})
			}
			tr.AppendChild(c)
		}

		tableNode.AppendChild(tr)
	}

	return tableNode
}

// Render writes the document as HTML to w, followed by a newline.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.Node()); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// Bytes renders the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buffer bytes.Buffer
	if err := d.Render(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func newElement(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}
