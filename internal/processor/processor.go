// Package processor wires extraction, bank detection, parsing and validation
// into the per-file conversion pipeline.
package processor

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"fjacquet/statement-csv/internal/bankdetect"
	"fjacquet/statement-csv/internal/config"
	"fjacquet/statement-csv/internal/extractor"
	"fjacquet/statement-csv/internal/fileutils"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/parsererror"
	"fjacquet/statement-csv/internal/parsers"
	"fjacquet/statement-csv/internal/validate"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package and its parser registry.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Processor runs the statement conversion pipeline.
type Processor struct {
	extractor extractor.TextExtractor
	registry  *parsers.Registry
	cfg       *config.Config
}

// New builds a Processor from the application configuration. A nil extractor
// selects the default PDF extraction chain.
func New(cfg *config.Config, ext extractor.TextExtractor) *Processor {
	if ext == nil {
		ext = extractor.NewChainExtractor()
	}
	pcfg := parsers.DefaultConfig()
	if cfg != nil {
		if r := cfg.Parsers.Roela; r.SplitRatio > 0 {
			pcfg.Roela = parsers.RoelaConfig{
				SplitRatio: r.SplitRatio,
				HeaderCut:  r.HeaderCut,
				FooterCut:  r.FooterCut,
			}
		}
	}
	return &Processor{
		extractor: ext,
		registry:  parsers.NewRegistry(pcfg),
		cfg:       cfg,
	}
}

// ExtractText returns the line-preserved statement text, for diagnostics.
func (p *Processor) ExtractText(path string) (string, error) {
	text, err := p.extractor.ExtractText(path, true)
	if err != nil {
		return "", &parsererror.ExtractionError{FilePath: path, Msg: "extraction chain exhausted", Err: err}
	}
	return text, nil
}

// DetectBank extracts the text of a statement and returns its bank identifier.
func (p *Processor) DetectBank(path string) (string, error) {
	text, err := p.ExtractText(path)
	if err != nil {
		return "", err
	}
	return bankdetect.Detect(text), nil
}

// ProcessFile converts one statement into validated transactions.
func (p *Processor) ProcessFile(path string) models.FileResult {
	result := models.FileResult{File: path}

	text, err := p.extractor.ExtractText(path, true)
	if err != nil {
		result.Error = (&parsererror.ExtractionError{FilePath: path, Msg: "extraction chain exhausted", Err: err}).Error()
		log.WithError(err).WithField("file", path).Error("Text extraction failed")
		return result
	}
	if strings.TrimSpace(text) == "" {
		result.Error = (&parsererror.ExtractionError{FilePath: path, Msg: "document contains no extractable text"}).Error()
		log.WithField("file", path).Error("No text extracted from document")
		return result
	}

	bankID := bankdetect.Detect(text)
	result.BankID = bankID
	log.WithFields(logrus.Fields{
		"file": path,
		"bank": bankID,
	}).Info("Detected bank")

	parser := p.registry.Get(bankID)
	if parser == nil {
		result.Error = (&parsererror.UnknownBankError{FilePath: path, BankID: bankID}).Error()
		log.WithField("file", path).Warn("No parser available for statement")
		return result
	}

	txs, err := parser.Parse(parsers.Input{Text: text, FilePath: path})
	if err != nil {
		result.Error = fmt.Sprintf("parsing failed: %v", err)
		log.WithError(err).WithFields(logrus.Fields{
			"file":   path,
			"parser": parser.BankID(),
		}).Error("Parsing failed")
		return result
	}

	result.Transactions = validate.Clean(txs)
	result.Success = true
	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(result.Transactions),
	}).Info("Parsed statement")
	return result
}

// ProcessFiles converts a set of statements and aggregates the outcome.
func (p *Processor) ProcessFiles(paths []string) (*models.ProcessingSummary, []models.FileResult) {
	summary := models.NewProcessingSummary(len(paths))
	results := make([]models.FileResult, 0, len(paths))
	for _, path := range paths {
		r := p.ProcessFile(path)
		summary.Add(r)
		results = append(results, r)
	}
	return summary, results
}

// CheckFiles applies the intake limits before any processing starts. It
// returns one message per violation; an empty slice means the batch is
// acceptable.
func (p *Processor) CheckFiles(paths []string) []string {
	maxFiles := 10
	maxSizeMB := int64(50)
	if p.cfg != nil {
		if p.cfg.Upload.MaxFiles > 0 {
			maxFiles = p.cfg.Upload.MaxFiles
		}
		if p.cfg.Upload.MaxSizeMB > 0 {
			maxSizeMB = int64(p.cfg.Upload.MaxSizeMB)
		}
	}

	var errs []string
	if len(paths) > maxFiles {
		errs = append(errs, fmt.Sprintf("too many files: %d (maximum allowed: %d)", len(paths), maxFiles))
	}
	reject := func(path, reason string) {
		errs = append(errs, (&parsererror.ValidationError{FilePath: path, Reason: reason}).Error())
	}
	for _, path := range paths {
		if !fileutils.HasExtension(path, ".pdf") {
			reject(path, "only PDF files are allowed")
			continue
		}
		size, err := fileutils.FileSize(path)
		if err != nil {
			reject(path, fmt.Sprintf("cannot read file: %v", err))
			continue
		}
		if size > maxSizeMB*1024*1024 {
			reject(path, fmt.Sprintf("file too large (%.1fMB, maximum allowed: %dMB)",
				float64(size)/(1024*1024), maxSizeMB))
		}
	}
	return errs
}
