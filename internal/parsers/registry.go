package parsers

import "strings"

// RoelaConfig holds the page geometry used to crop and split Banco Roela
// statement columns, in PDF points.
type RoelaConfig struct {
	SplitRatio float64
	HeaderCut  float64
	FooterCut  float64
}

// Config carries per-bank tuning knobs into the parser constructors.
type Config struct {
	Roela RoelaConfig
}

// DefaultConfig returns the geometry measured on real Roela statements.
func DefaultConfig() Config {
	return Config{
		Roela: RoelaConfig{
			SplitRatio: 0.515,
			HeaderCut:  260,
			FooterCut:  30,
		},
	}
}

// constructors is the static registration table. Order matters: when two
// parsers claim the same identifier or alias, the first one wins.
var constructors = []func(Config) Parser{
	newRoela,
	newGalicia,
	newSantander,
	newBBVA,
	newCaixaBank,
	newGenericArgentinian,
	newGenericSpanish,
	newGenericEnglish,
}

// Registry resolves bank identifiers to parser singletons.
type Registry struct {
	byID map[string]Parser
}

// NewRegistry instantiates every registered parser once and indexes it under
// its identifier and aliases.
func NewRegistry(cfg Config) *Registry {
	r := &Registry{byID: make(map[string]Parser)}
	for _, build := range constructors {
		p := build(cfg)
		r.add(p.BankID(), p)
		for _, alias := range p.Aliases() {
			r.add(alias, p)
		}
	}
	return r
}

func (r *Registry) add(id string, p Parser) {
	id = strings.ToLower(strings.TrimSpace(id))
	if _, taken := r.byID[id]; taken {
		return
	}
	r.byID[id] = p
}

// Get returns the parser for a detector identifier. Unmatched identifiers
// fall back to a language-generic parser; only the literal "unknown" yields
// nil, meaning the statement cannot be parsed at all.
func (r *Registry) Get(bankID string) Parser {
	id := strings.ToLower(strings.TrimSpace(bankID))
	if p, ok := r.byID[id]; ok {
		return p
	}
	if id == "unknown" {
		return nil
	}
	if strings.Contains(id, "spanish") || strings.Contains(id, "spain") || strings.Contains(id, "españa") {
		return r.byID["generic_spanish"]
	}
	return r.byID["generic_english"]
}

// IDs returns every registered identifier and alias.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids
}
