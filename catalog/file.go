package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quadview/quadview/quadrature"
)

// fileEntry is the YAML shape of one expression-backed catalog entry.
type fileEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	LaTeX       string  `yaml:"latex"`
	Category    string  `yaml:"category"`
	Expression  string  `yaml:"expression"`
	DefaultA    float64 `yaml:"default_a"`
	DefaultB    float64 `yaml:"default_b"`
	BestMethod  string  `yaml:"best_method"`
	Description string  `yaml:"description"`
}

// LoadFile reads expression-backed entries from a YAML file and compiles
// each expression into an integrand via compile (typically
// exprfn.Compiler.Compile). The result is meant to be appended to
// Builtin() and handed to New, which performs the structural validation.
//
// A missing best_method defaults to Simpson, matching the builtin bias.
func LoadFile(path string, compile func(string) (quadrature.Func, error)) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var fileEntries []fileEntry
	if err := yaml.Unmarshal(raw, &fileEntries); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(fileEntries))
	for _, fe := range fileEntries {
		if fe.ID == "" || fe.Expression == "" {
			return nil, fmt.Errorf("%w: id=%q needs both id and expression", ErrBadEntry, fe.ID)
		}

		f, err := compile(fe.Expression)
		if err != nil {
			return nil, fmt.Errorf("catalog: entry %q: %w", fe.ID, err)
		}

		best := quadrature.Simpson
		if fe.BestMethod != "" {
			best, err = quadrature.ParseMethod(fe.BestMethod)
			if err != nil {
				return nil, fmt.Errorf("catalog: entry %q: %w", fe.ID, err)
			}
		}

		entries = append(entries, Entry{
			ID:          fe.ID,
			Name:        fe.Name,
			LaTeX:       fe.LaTeX,
			Category:    fe.Category,
			DefaultA:    fe.DefaultA,
			DefaultB:    fe.DefaultB,
			BestMethod:  best,
			Description: fe.Description,
			Func:        f,
		})
	}

	return entries, nil
}
