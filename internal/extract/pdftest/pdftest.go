// Package pdftest builds small, valid PDF documents in memory for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Line is a single line of text drawn with the built-in Helvetica font.
type Line struct {
	Text string
	Size float64
}

// Page is an ordered list of lines, drawn top to bottom.
type Page []Line

// Text returns a page of body-size lines.
func Text(lines ...string) Page {
	page := make(Page, 0, len(lines))
	for _, l := range lines {
		page = append(page, Line{Text: l, Size: 11})
	}
	return page
}

// Build renders the pages into a single-revision PDF with a classic xref table.
func Build(pages ...Page) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	// 1 catalog, 2 page tree, 3 font, then a page + content stream pair per page.
	total := 3 + 2*len(pages)
	offsets := make([]int, total+1)
	writeObj := func(id int, body string) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
	}

	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, page := range pages {
		pageID := 4 + 2*i
		contentID := pageID + 1
		writeObj(pageID, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentID))
		stream := contentStream(page)
		writeObj(contentID, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", total+1)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id <= total; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total+1, xrefOffset)
	return buf.Bytes()
}

func contentStream(page Page) string {
	var b strings.Builder
	y := 750.0
	for _, line := range page {
		size := line.Size
		if size <= 0 {
			size = 11
		}
		fmt.Fprintf(&b, "BT /F1 %g Tf 72 %g Td (%s) Tj ET\n", size, y, escape(line.Text))
		y -= size * 1.6
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
