package classify

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rocjay1/cashier-analyzer/internal/models"
)

// ConfigError reports an unreadable or malformed rules file. It is fatal and
// aborts the run before any row is processed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rules config %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ruleFile is the on-disk shape: an ordered array so the config keeps the
// first-match-wins semantics of the built-in set.
type ruleFile []struct {
	Category string   `json:"category"`
	Tokens   []string `json:"tokens"`
}

// Load reads a JSON rules file and returns a classifier over it. The file
// replaces the default rule set entirely. Category names must be canonical;
// unknown is not allowed as a rule target since it is the fall-through.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var rf ruleFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if len(rf) == 0 {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("no rules defined")}
	}

	valid := make(map[models.Category]bool, len(models.Categories))
	for _, c := range models.Categories {
		valid[c] = true
	}

	rules := make([]Rule, 0, len(rf))
	for i, entry := range rf {
		cat := models.Category(entry.Category)
		if !valid[cat] || cat == models.CategoryUnknown {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("rule %d: invalid category %q", i, entry.Category)}
		}
		if len(entry.Tokens) == 0 {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("rule %d (%s): no tokens", i, entry.Category)}
		}
		rules = append(rules, Rule{Category: cat, Tokens: entry.Tokens})
	}
	return New(rules), nil
}
