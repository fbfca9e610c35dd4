// Package extractor wraps the PDF text extraction libraries behind a single
// adapter with a layered fallback chain.
package extractor

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	dpdf "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"

	"fjacquet/statement-csv/internal/textutils"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// TextExtractor extracts text content from a PDF file. The interface exists
// so the processing pipeline can be tested without real PDF files.
type TextExtractor interface {
	// ExtractText returns the cleaned text of the document. preserveLines
	// keeps newlines so line-oriented parsers can split the result.
	ExtractText(path string, preserveLines bool) (string, error)
}

// ChainExtractor is the production TextExtractor. It tries a layout-aware
// extraction first, then a simpler plain-text pass with a second library,
// then a raw scan of the file bytes for string literals. Extraction never
// fails on merely-empty documents: an empty string is a valid result.
type ChainExtractor struct{}

// NewChainExtractor creates the default extraction chain.
func NewChainExtractor() *ChainExtractor {
	return &ChainExtractor{}
}

// ExtractText implements TextExtractor.
func (e *ChainExtractor) ExtractText(path string, preserveLines bool) (string, error) {
	text, err := extractByRows(path)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.WithError(err).WithField("file", path).Warn("Primary PDF extraction failed")
		}
		text, err = extractPlain(path)
	}
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.WithError(err).WithField("file", path).Warn("Secondary PDF extraction failed")
		}
		text, err = scanRawLiterals(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Warn("Raw literal scan failed")
			return "", err
		}
	}
	return textutils.Clean(text, preserveLines), nil
}

// extractByRows uses the layout-aware library, reading each page row by row
// so the physical line structure survives.
func extractByRows(path string) (text string, err error) {
	// The underlying library panics on some malformed cross reference
	// tables; convert that into an error so the chain can continue.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.WithError(cerr).WithField("file", path).Warn("Failed to close PDF file")
		}
	}()

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(word.S)
			}
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

// extractPlain uses the secondary library's linear text stream.
func extractPlain(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := dpdf.Open(path)
	if err != nil {
		return "", err
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// scanRawLiterals is the last resort for minimal or malformed PDFs whose
// content streams are uncompressed: it pulls parenthesized string literals
// straight out of the file bytes.
func scanRawLiterals(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	depth := 0
	var literal strings.Builder
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '\\' && depth > 0 && i+1 < len(data):
			// Unescape the characters PDF literals commonly carry.
			i++
			switch data[i] {
			case 'n', 'r':
				literal.WriteByte('\n')
			case 't':
				literal.WriteByte(' ')
			default:
				literal.WriteByte(data[i])
			}
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
				if depth == 0 && literal.Len() > 0 {
					out.WriteString(literal.String())
					out.WriteString("\n")
					literal.Reset()
				}
			}
		case depth > 0:
			if c >= 0x20 && c < 0x7f || c >= 0xc0 {
				literal.WriteByte(c)
			}
		}
	}
	return out.String(), nil
}

// MockExtractor returns canned text for tests, mirroring the production
// interface.
type MockExtractor struct {
	Text string
	Err  error
}

// ExtractText implements TextExtractor.
func (m *MockExtractor) ExtractText(path string, preserveLines bool) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return textutils.Clean(m.Text, preserveLines), nil
}
