package match

//go:generate go tool stringer -type=Rule -trimprefix=Rule -output=rule_string.go

// Rule identifies which resolution rule produced a candidate.
type Rule int

const (
	// RuleNone - no rule applied.
	RuleNone Rule = iota
	// RuleFieldAlias - the backing field's alias equals the target name.
	RuleFieldAlias
	// RuleNameDistance - the property name is within the distance threshold.
	RuleNameDistance
	// RuleWriteAlias - the write accessor's alias equals the target name.
	RuleWriteAlias
	// RuleReadAlias - the read accessor's alias equals the target name.
	RuleReadAlias
)
