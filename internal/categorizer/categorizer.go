// Package categorizer maps wallet counterparties to ledger accounts.
package categorizer

import (
	"github.com/example/paytm-import/internal/config"
)

// CashbackPayee is the counterparty assigned to cashback credits. It is not a
// real merchant name.
const CashbackPayee = "Cashback"

type rule struct {
	category string
	payees   map[string]struct{}
}

// Categorizer resolves a counterparty to a category. The first matching rule wins.
type Categorizer struct {
	rules            []rule
	cashbackCategory string
	defaultCategory  string
}

// New builds a Categorizer from the configured tables.
func New(cfg *config.Config) *Categorizer {
	c := &Categorizer{
		rules:            make([]rule, 0, len(cfg.Categories)),
		cashbackCategory: cfg.CashbackCategory,
		defaultCategory:  cfg.DefaultCategory,
	}
	for _, cr := range cfg.Categories {
		r := rule{category: cr.Category, payees: make(map[string]struct{}, len(cr.Payees))}
		for _, p := range cr.Payees {
			r.payees[p] = struct{}{}
		}
		c.rules = append(c.rules, r)
	}
	return c
}

// Categorize returns the category for where. It never fails.
func (c *Categorizer) Categorize(where string) string {
	for _, r := range c.rules {
		if _, ok := r.payees[where]; ok {
			return r.category
		}
	}
	if where == CashbackPayee {
		return c.cashbackCategory
	}
	return c.defaultCategory
}
