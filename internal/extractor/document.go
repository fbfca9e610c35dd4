package extractor

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document gives page-level access to an open PDF, including the positioned
// text runs the column-layout parser needs.
type Document struct {
	file   *os.File
	reader *pdf.Reader
}

// Open opens a PDF for page-oriented access. The caller must Close it.
func Open(path string) (d *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &Document{file: f, reader: r}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageText extracts the full text of one page (1-based), preserving row
// structure.
func (d *Document) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, row := range rows {
		for j, word := range row.Content {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(word.S)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// PageColumns splits a page at width*splitRatio and returns the text of the
// left then the right column, each read top-to-bottom. headerCut and
// footerCut trim that many points from the top and bottom of the page before
// the split, discarding the statement header table and page footer.
func (d *Document) PageColumns(n int, splitRatio, headerCut, footerCut float64) (left, right string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", "", nil
	}

	width, height := pageSize(p)
	splitX := width * splitRatio
	// PDF text coordinates grow upward, so the header band sits at high Y.
	minY := footerCut
	maxY := height - headerCut

	content := p.Content()
	var leftRuns, rightRuns []pdf.Text
	for _, t := range content.Text {
		if t.Y <= minY || t.Y >= maxY {
			continue
		}
		if t.X < splitX {
			leftRuns = append(leftRuns, t)
		} else {
			rightRuns = append(rightRuns, t)
		}
	}
	return assembleLines(leftRuns), assembleLines(rightRuns), nil
}

// pageSize reads the MediaBox, falling back to US Letter when absent.
func pageSize(p pdf.Page) (width, height float64) {
	width, height = 612, 792
	box := p.V.Key("MediaBox")
	if box.Kind() == pdf.Array && box.Len() == 4 {
		w := box.Index(2).Float64() - box.Index(0).Float64()
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if w > 0 && h > 0 {
			width, height = w, h
		}
	}
	return width, height
}

// yTolerance groups runs whose baselines differ by no more than this many
// points into the same visual line.
const yTolerance = 2.0

// assembleLines orders positioned text runs into reading order: lines top to
// bottom, runs within a line left to right. Runs are grouped into lines
// before the X ordering, so baseline drift within the tolerance cannot push
// a run out of left-to-right order.
func assembleLines(runs []pdf.Text) string {
	if len(runs) == 0 {
		return ""
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Y > runs[j].Y
	})

	var lines [][]pdf.Text
	lineY := runs[0].Y
	var current []pdf.Text
	for _, t := range runs {
		if lineY-t.Y > yTolerance {
			lines = append(lines, current)
			current = nil
			lineY = t.Y
		}
		current = append(current, t)
	}
	lines = append(lines, current)

	var b strings.Builder
	for i, line := range lines {
		sort.SliceStable(line, func(x, y int) bool {
			return line[x].X < line[y].X
		})
		if i > 0 {
			b.WriteString("\n")
		}
		for j, t := range line {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(t.S)
		}
	}
	return b.String()
}
