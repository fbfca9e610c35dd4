package extractor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRawLiterals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.pdf")
	content := "%PDF-1.4\nBT (Hello World) Tj ET\nBT (Second line) Tj ET\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := scanRawLiterals(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello World\nSecond line\n", text)
}

func TestScanRawLiteralsEscapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.pdf")
	content := `BT (Linea\nuna \(dos\)) Tj ET`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := scanRawLiterals(path)
	require.NoError(t, err)
	assert.Equal(t, "Linea\nuna (dos)\n", text)
}

func TestScanRawLiteralsNoLiterals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.pdf")
	require.NoError(t, os.WriteFile(path, []byte("no pdf strings here"), 0o644))

	text, err := scanRawLiterals(path)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestChainExtractorMissingFile(t *testing.T) {
	e := NewChainExtractor()
	_, err := e.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"), true)
	assert.Error(t, err)
}

func TestChainExtractorFallsBackToRawScan(t *testing.T) {
	// Not a valid PDF for either reader library, but it carries string
	// literals the raw scan can recover.
	path := filepath.Join(t.TempDir(), "fake.pdf")
	content := "%PDF-1.4\n(05/05/2025 Compra en tienda -100,00)\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	e := NewChainExtractor()
	text, err := e.ExtractText(path, true)
	require.NoError(t, err)
	assert.Contains(t, text, "05/05/2025 Compra en tienda -100,00")
}

func TestMockExtractor(t *testing.T) {
	m := &MockExtractor{Text: "line one\n\n\nline   two"}

	text, err := m.ExtractText("ignored.pdf", true)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)

	flat, err := m.ExtractText("ignored.pdf", false)
	require.NoError(t, err)
	assert.Equal(t, "line one line two", flat)
}

func TestMockExtractorError(t *testing.T) {
	m := &MockExtractor{Err: errors.New("boom")}
	_, err := m.ExtractText("ignored.pdf", true)
	assert.EqualError(t, err, "boom")
}
