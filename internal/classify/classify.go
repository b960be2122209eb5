// Package classify maps the free-text transaction type of a cashier export to
// one of the canonical categories. The rules are an ordered list of substring
// tokens evaluated first-match-wins, kept as plain data so the set can be
// replaced from a config file for rooms with different wording.
package classify

import (
	"strings"

	"github.com/rocjay1/cashier-analyzer/internal/models"
)

// Rule matches a raw type string when it contains any of the tokens.
type Rule struct {
	Category models.Category
	Tokens   []string
}

// DefaultRules returns the built-in rule set, tuned to PokerOK cashier
// wording. Order matters: "payout to bank" must hit the withdrawal rule
// before the payout rule sees it.
func DefaultRules() []Rule {
	return []Rule{
		{models.CategoryDeposit, []string{"deposit", "top up", "cashin"}},
		{models.CategoryWithdrawal, []string{"withdraw", "cashout", "cash out", "payout to"}},
		{models.CategoryBuyin, []string{"buy-in", "buyin", "entry", "registration"}},
		{models.CategoryPayout, []string{"winnings", "payout", "prize"}},
		{models.CategoryRakeback, []string{"rakeback", "fish buffet", "cashback"}},
		{models.CategoryBonus, []string{"bonus", "reward", "promo"}},
		{models.CategoryFee, []string{"fee", "commission"}},
	}
}

// Classifier applies an ordered rule set. The zero value is not usable; build
// one with New or Load.
type Classifier struct {
	rules []Rule
}

// New returns a classifier over the given rules.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify maps raw type text to a category. Matching is case-insensitive and
// never fails: text no rule recognizes, and empty input, map to unknown.
func (c *Classifier) Classify(raw string) models.Category {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return models.CategoryUnknown
	}
	for _, rule := range c.rules {
		for _, token := range rule.Tokens {
			if strings.Contains(t, token) {
				return rule.Category
			}
		}
	}
	return models.CategoryUnknown
}

// Classify applies the default rule set.
func Classify(raw string) models.Category {
	return New(DefaultRules()).Classify(raw)
}
