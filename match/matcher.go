package match

import (
	"slices"

	"property-matcher/property"
)

// DefaultMaxDistance is the default maximum edit distance for name matches.
const DefaultMaxDistance = 2

// Config controls how candidates are computed.
type Config struct {
	// MaxDistance is the maximum edit distance for the name-distance rule.
	// A negative value disables distance-based matching entirely; alias
	// rules still apply.
	MaxDistance int
	// Deduplicate removes repeated candidate names before sorting.
	// The default (false) preserves the historical behavior where a property
	// can appear once per matching rule.
	Deduplicate bool
}

// DefaultConfig returns the default matching configuration.
func DefaultConfig() Config {
	return Config{MaxDistance: DefaultMaxDistance}
}

// Candidate is a single possible alternative for an invalid property name.
type Candidate struct {
	// Name is the property name being suggested.
	Name string
	// Rule is the resolution rule that produced this candidate.
	Rule Rule
	// Distance is the edit distance between the target name and the property
	// name. Alias rules match exactly regardless of distance.
	Distance int
}

// PropertyMatches holds the computed alternatives for a single invalid
// property name. Matches are computed eagerly by ForProperty and never
// recomputed; instances are safe for concurrent reads.
type PropertyMatches struct {
	propertyName string
	matches      []string
}

// ForProperty computes matches for the given invalid property name against
// the descriptor list, using the default configuration.
func ForProperty(propertyName string, descs []property.Descriptor) *PropertyMatches {
	return ForPropertyWithConfig(propertyName, descs, DefaultConfig())
}

// ForPropertyWithConfig computes matches with an explicit configuration.
// The returned candidate names are sorted lexicographically (byte-wise).
func ForPropertyWithConfig(propertyName string, descs []property.Descriptor, cfg Config) *PropertyMatches {
	candidates := Explain(propertyName, descs, cfg)

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}

	if cfg.Deduplicate {
		names = dedupe(names)
	}

	slices.Sort(names)

	return &PropertyMatches{
		propertyName: propertyName,
		matches:      names,
	}
}

// PossibleMatches returns the candidate names sorted lexicographically.
// The returned slice is the internal one; callers must not modify it.
func (m *PropertyMatches) PossibleMatches() []string {
	return m.matches
}

// ErrorMessage renders the suggestion message for the invalid property name.
func (m *PropertyMatches) ErrorMessage() string {
	return BuildErrorMessage(m.propertyName, m.matches)
}

// Explain walks the descriptors in order and reports every candidate together
// with the rule that produced it. Candidates appear in descriptor walk order,
// unsorted and without deduplication.
//
// Per-descriptor resolution order:
//  1. A backing-field alias equal to the target name wins outright; no other
//     rule is evaluated for that descriptor.
//  2. Otherwise a writable property matches by edit distance, or failing
//     that, by its write accessor's alias.
//  3. A read accessor's alias is checked independently of rule 2 and can add
//     the same property a second time.
//
// A descriptor with no write accessor and no alias-bearing read accessor
// contributes nothing.
func Explain(propertyName string, descs []property.Descriptor, cfg Config) []Candidate {
	var candidates []Candidate

	for i := range descs {
		d := &descs[i]

		if d.Field.HasAlias() && d.Field.Alias == propertyName {
			candidates = append(candidates, Candidate{
				Name:     d.Name,
				Rule:     RuleFieldAlias,
				Distance: Distance(propertyName, d.Name),
			})

			continue
		}

		if d.Writable() {
			dist := Distance(propertyName, d.Name)

			switch {
			case dist <= cfg.MaxDistance:
				candidates = append(candidates, Candidate{Name: d.Name, Rule: RuleNameDistance, Distance: dist})
			case d.Write.HasAlias() && d.Write.Alias == propertyName:
				candidates = append(candidates, Candidate{Name: d.Name, Rule: RuleWriteAlias, Distance: dist})
			}
		}

		if d.Read.HasAlias() && d.Read.Alias == propertyName {
			candidates = append(candidates, Candidate{
				Name:     d.Name,
				Rule:     RuleReadAlias,
				Distance: Distance(propertyName, d.Name),
			})
		}
	}

	return candidates
}

// dedupe removes repeated names, keeping first occurrences in place.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := names[:0]

	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		result = append(result, n)
	}

	return result
}
