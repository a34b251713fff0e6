package donation

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Rule is one row of the participant replacement table.
type Rule struct {
	// Replaces is the participant id this rule's data supersedes.
	Replaces string
	// Platforms flags, per platform name, whether the replacement applies.
	Platforms map[string]bool
}

// Replacements maps a replacing participant id to its rule.
type Replacements map[string]Rule

// LoadReplacements reads the replacement table from a CSV file. The header
// must contain "id", "replaces" and one boolean column per spec name; a
// missing column is a configuration error and fails the load. Flags accept
// 0/1/true/false.
func LoadReplacements(path string, specs []Spec) (Replacements, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replacement table: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse replacement table %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("replacement table %q is empty", path)
	}

	// Resolve required columns against the header
	index := map[string]int{}
	for i, col := range records[0] {
		index[strings.TrimSpace(col)] = i
	}
	required := []string{"id", "replaces"}
	for _, spec := range specs {
		required = append(required, spec.Name)
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("replacement table %q: missing column %q", path, col)
		}
	}

	rules := make(Replacements, len(records)-1)
	for n, record := range records[1:] {
		rule := Rule{
			Replaces:  strings.ToLower(record[index["replaces"]]),
			Platforms: make(map[string]bool, len(specs)),
		}
		for _, spec := range specs {
			flag, err := strconv.ParseBool(record[index[spec.Name]])
			if err != nil {
				return nil, fmt.Errorf("replacement table %q row %d: column %q: %w", path, n+2, spec.Name, err)
			}
			rule.Platforms[spec.Name] = flag
		}
		rules[strings.ToLower(record[index["id"]])] = rule
	}
	return rules, nil
}
