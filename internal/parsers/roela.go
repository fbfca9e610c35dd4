package parsers

import (
	"regexp"
	"strings"

	"fjacquet/statement-csv/internal/amountutils"
	"fjacquet/statement-csv/internal/dateutils"
	"fjacquet/statement-csv/internal/extractor"
	"fjacquet/statement-csv/internal/models"
	"fjacquet/statement-csv/internal/textutils"
)

const roelaBankName = "Banco Roela (Arg.)"

// Past this marker the statement switches to promotional material.
const roelaFooterMarker = "DE INTERES PARA USTED"

// Movement codes are a bare number with an optional letter prefix, e.g.
// "148" or "F40001". The code decides the sign of the amount.
var (
	roelaCodeRe    = regexp.MustCompile(`^[A-Za-z]?\d+$`)
	roelaAmountRe  = regexp.MustCompile(`-?\d{1,3}(?:[.,]\d{3})*[.,]\d{2}`)
	roelaDateRe    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	roelaAccountRe = regexp.MustCompile(`Cuenta\s*:\s*(\d+/\d+)`)
)

var roelaDebitCodes = map[string]bool{
	"309": true, "313": true, "314": true, "317": true, "318": true,
	"319": true, "320": true, "321": true, "322": true, "323": true,
	"386": true, "396": true, "300100": true, "700100": true, "710100": true,
	"750100": true, "760100": true, "810100": true, "860100": true,
	"880100": true, "F30100": true,
}

var roelaCreditCodes = map[string]bool{
	"305": true, "310": true, "324": true, "325": true, "332": true,
	"333": true, "334": true, "335": true, "720100": true, "740100": true,
	"770100": true, "F40001": true,
}

type roelaPrefixRule struct {
	debitDefault bool
	credit       map[string]bool
	debit        map[string]bool
}

var roelaPrefixRules = map[byte]roelaPrefixRule{
	'1': {debitDefault: true},
	'2': {debitDefault: true, credit: map[string]bool{
		"290": true, "291": true, "296": true,
		"200001": true, "240001": true, "290001": true,
	}},
	'4': {debitDefault: false, debit: map[string]bool{
		"400101": true, "400111": true,
	}},
	'5': {debitDefault: false, debit: map[string]bool{
		"557": true, "583": true, "585": true, "586": true,
		"593": true, "594": true, "500131": true,
	}},
}

// roelaIsDebit classifies a movement code. Unknown codes are treated as
// debits so that unclassified movements never inflate the balance.
func roelaIsDebit(code string) bool {
	code = strings.TrimSpace(code)
	if roelaDebitCodes[code] {
		return true
	}
	if roelaCreditCodes[code] {
		return false
	}
	if !roelaCodeRe.MatchString(code) {
		return true
	}
	num := strings.TrimLeft(code, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")
	if num == "" {
		return true
	}
	rule, ok := roelaPrefixRules[num[0]]
	if !ok {
		return true
	}
	if rule.credit[num] {
		return false
	}
	if rule.debit[num] {
		return true
	}
	return rule.debitDefault
}

// roelaParser handles Banco Roela statements. Their movements are laid out in
// two newspaper-style columns with a fixed header and footer band, so when
// the source file is available the text is re-extracted column by column
// instead of trusting the row-merged extraction.
type roelaParser struct {
	cfg RoelaConfig
}

func newRoela(cfg Config) Parser {
	return &roelaParser{cfg: cfg.Roela}
}

func (p *roelaParser) BankID() string    { return "roela_ar" }
func (p *roelaParser) Aliases() []string { return []string{"roela"} }
func (p *roelaParser) BankName() string  { return roelaBankName }

func (p *roelaParser) Parse(in Input) ([]models.Transaction, error) {
	text := in.Text
	account := ""
	if in.FilePath != "" {
		if columnText, acct, err := p.extractColumns(in.FilePath); err == nil {
			text = columnText
			account = acct
		} else {
			log.WithError(err).WithField("file", in.FilePath).
				Warn("Column extraction failed, falling back to pre-extracted text")
		}
	}
	if account == "" {
		if m := roelaAccountRe.FindStringSubmatch(text); m != nil {
			account = m[1]
		}
	}
	return p.parseLines(text, account), nil
}

// extractColumns re-reads the PDF and returns the column-ordered text plus
// the account number from the first page. Pages from the footer marker
// onward are promotional and are not extracted.
func (p *roelaParser) extractColumns(path string) (string, string, error) {
	doc, err := extractor.Open(path)
	if err != nil {
		return "", "", err
	}
	defer doc.Close()

	account := ""
	var pages []string
	for n := 1; n <= doc.NumPages(); n++ {
		full, err := doc.PageText(n)
		if err != nil {
			continue
		}
		if n == 1 {
			if m := roelaAccountRe.FindStringSubmatch(full); m != nil {
				account = m[1]
			}
		}
		if strings.Contains(strings.ToUpper(full), roelaFooterMarker) {
			break
		}
		left, right, err := doc.PageColumns(n, p.cfg.SplitRatio, p.cfg.HeaderCut, p.cfg.FooterCut)
		if err != nil || strings.TrimSpace(left+right) == "" {
			pages = append(pages, full)
			continue
		}
		pages = append(pages, strings.TrimSpace(left+"\n"+right))
	}
	return strings.Join(pages, "\n"), account, nil
}

// parseLines runs a single forward pass over the column-ordered lines. Date
// lines set the date for the movements that follow, SALDO lines are running
// balances and carry no movement, and lines without an amount extend the
// previous movement's description.
func (p *roelaParser) parseLines(text, account string) []models.Transaction {
	info := models.AccountInfo{Number: account, Currency: "ARS"}

	var txs []models.Transaction
	currentDate := ""
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		tokens := strings.Fields(raw)

		if roelaDateRe.MatchString(tokens[0]) {
			if iso, ok := dateutils.ParseToISO(tokens[0]); ok {
				currentDate = iso
			}
			continue
		}
		if strings.EqualFold(tokens[0], "SALDO") {
			continue
		}

		loc := roelaAmountRe.FindStringIndex(raw)
		if loc == nil || currentDate == "" {
			if len(txs) > 0 {
				txs[len(txs)-1].Description += " " + textutils.Clean(raw, false)
			}
			continue
		}

		amount := amountutils.ParseLoose(raw[loc[0]:loc[1]])
		desc := textutils.Clean(strings.TrimRight(raw[:loc[0]], " \t"), false)
		code, _, _ := strings.Cut(desc, " ")
		if !roelaCodeRe.MatchString(code) {
			continue
		}
		if roelaIsDebit(code) {
			amount = amount.Neg()
		}

		tx := models.Transaction{
			Date:        currentDate,
			Description: desc,
			Amount:      amount,
		}
		finalizeTx(&tx, info, roelaBankName)
		txs = append(txs, tx)
	}
	return txs
}
