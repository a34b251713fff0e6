package donation

import (
	"strings"

	"go.uber.org/zap"
)

// Reconcile applies the replacement table to the classified metadata and
// returns a new list; the input is never modified. With no rules it returns
// a plain copy.
//
// Per entry, in order:
//  1. The entry's id is itself a replacement: if the rule's flag for the
//     entry's platform is false the entry is dropped, otherwise it is kept
//     with its id rewritten to the id it replaces.
//  2. Some rule replaces the entry's id on this platform: the entry is
//     dropped, its data having been superseded.
//  3. Otherwise the entry is kept unchanged.
//
// Resolution is single-pass: a rewritten id is not looked up against the
// table again, so chained replacements (a replaces b replaces c) are
// unsupported. Diagnostics log masked ids only and never affect the result.
func Reconcile(meta []FileMetadata, rules Replacements, log *zap.Logger) []FileMetadata {
	out := make([]FileMetadata, 0, len(meta))
	if rules == nil {
		return append(out, meta...)
	}

	for _, m := range meta {
		if rule, ok := rules[m.ID]; ok {
			if !rule.Platforms[m.Platform] {
				log.Info("skipping replacement entry",
					zap.String("id", maskID(m.ID)),
					zap.String("platform", m.Platform))
				continue
			}
			replaced := m
			replaced.ID = rule.Replaces
			log.Info("replacing participant",
				zap.String("old", maskID(rule.Replaces)),
				zap.String("new", maskID(m.ID)),
				zap.String("platform", m.Platform))
			out = append(out, replaced)
			continue
		}

		if supersededBy(rules, m) {
			log.Info("skipping superseded entry",
				zap.String("id", maskID(m.ID)),
				zap.String("platform", m.Platform))
			continue
		}

		out = append(out, m)
	}
	return out
}

// supersededBy reports whether any rule replaces m's id on m's platform.
func supersededBy(rules Replacements, m FileMetadata) bool {
	for _, rule := range rules {
		if rule.Replaces == m.ID && rule.Platforms[m.Platform] {
			return true
		}
	}
	return false
}

// maskID hides the middle of a participant id, keeping the first and last
// character. Ids too short to mask are returned as is.
func maskID(id string) string {
	if len(id) <= 2 {
		return id
	}
	return id[:1] + strings.Repeat("*", len(id)-2) + id[len(id)-1:]
}
