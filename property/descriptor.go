package property

// Member identifies a field or accessor method belonging to a property.
type Member struct {
	// Name is the member's own name (field name or method name).
	Name string
	// Alias is the declared alternate property name carried by this member,
	// or empty when no alias is declared.
	Alias string
}

// HasAlias reports whether the member exists and declares an alias.
// The empty string is not a valid alias value.
func (m *Member) HasAlias() bool {
	return m != nil && m.Alias != ""
}

// Descriptor describes a single property of a record type.
// Descriptors are plain values produced by an enumeration facility such as
// Describe; the matcher never mutates them.
type Descriptor struct {
	// Name is the property name, non-empty and unique within a type's
	// descriptor list.
	Name string
	// Field is the backing field, if any.
	Field *Member
	// Read is the read accessor, if any.
	Read *Member
	// Write is the write accessor, if any. A property without one is not
	// writable and never matches by edit distance.
	Write *Member
}

// Writable reports whether the property has a write accessor.
func (d *Descriptor) Writable() bool {
	return d.Write != nil
}

// clone returns a deep copy of the descriptor so alias application never
// mutates the caller's members.
func (d *Descriptor) clone() Descriptor {
	out := Descriptor{Name: d.Name}

	if d.Field != nil {
		f := *d.Field
		out.Field = &f
	}

	if d.Read != nil {
		r := *d.Read
		out.Read = &r
	}

	if d.Write != nil {
		w := *d.Write
		out.Write = &w
	}

	return out
}
