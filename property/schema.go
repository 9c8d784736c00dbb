package property

import "property-matcher/internal/diagnostic"

// Table is the root of an alias-table YAML file. It attaches alias metadata
// to properties of named types at registration time, keeping the matcher
// decoupled from any particular annotation mechanism.
//
// Example:
//
//	version: "1"
//	types:
//	  - name: store.Order
//	    aliases:
//	      - property: Email
//	        field: email_address
//	      - property: Customer
//	        write: customer_name
//	        read: customerName
type Table struct {
	Version string        `yaml:"version,omitempty"`
	Types   []TypeAliases `yaml:"types"`
}

// TypeAliases holds the alias entries declared for one named type.
type TypeAliases struct {
	Name    string       `yaml:"name"`
	Aliases []AliasEntry `yaml:"aliases"`
}

// AliasEntry attaches aliases to the members of one property.
// Each of Field, Read and Write is optional.
type AliasEntry struct {
	Property string `yaml:"property"`
	Field    string `yaml:"field,omitempty"`
	Read     string `yaml:"read,omitempty"`
	Write    string `yaml:"write,omitempty"`
}

// Type returns the alias entries for the given type name, or nil.
func (t *Table) Type(name string) *TypeAliases {
	for i := range t.Types {
		if t.Types[i].Name == name {
			return &t.Types[i]
		}
	}

	return nil
}

// Validate checks the table for structural problems and returns diagnostics.
// Errors: empty type names, empty property names, duplicate property entries
// within a type. Warnings: entries declaring no alias at all.
func (t *Table) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, ta := range t.Types {
		if ta.Name == "" {
			diags.AddError("empty_type_name",
				"alias table entry has no type name", ta.Name, "")
		}

		seen := make(map[string]bool, len(ta.Aliases))

		for _, e := range ta.Aliases {
			if e.Property == "" {
				diags.AddError("empty_property",
					"alias entry has no property name", ta.Name, e.Property)

				continue
			}

			if seen[e.Property] {
				diags.AddError("duplicate_property",
					"property has more than one alias entry", ta.Name, e.Property)
			}

			seen[e.Property] = true

			if e.Field == "" && e.Read == "" && e.Write == "" {
				diags.AddWarning("no_alias",
					"alias entry declares no field, read, or write alias", ta.Name, e.Property)
			}
		}
	}

	return diags
}

// ApplyAliases returns a copy of the descriptors with alias metadata from the
// table's entry for typeName merged in. Aliases attach only to members that
// exist; a write alias for a property with no write accessor is dropped.
// The input descriptors are never mutated. An unknown type name returns the
// input unchanged.
func ApplyAliases(descs []Descriptor, table *Table, typeName string) []Descriptor {
	ta := table.Type(typeName)
	if ta == nil {
		return descs
	}

	byProperty := make(map[string]*AliasEntry, len(ta.Aliases))
	for i := range ta.Aliases {
		byProperty[ta.Aliases[i].Property] = &ta.Aliases[i]
	}

	out := make([]Descriptor, 0, len(descs))

	for i := range descs {
		d := descs[i].clone()

		if e, ok := byProperty[d.Name]; ok {
			if d.Field != nil && e.Field != "" {
				d.Field.Alias = e.Field
			}

			if d.Read != nil && e.Read != "" {
				d.Read.Alias = e.Read
			}

			if d.Write != nil && e.Write != "" {
				d.Write.Alias = e.Write
			}
		}

		out = append(out, d)
	}

	return out
}
