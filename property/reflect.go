package property

import "reflect"

// AliasTag is the struct tag key carrying a field's alias.
const AliasTag = "alias"

// Describe enumerates the properties of a struct type.
//
// Every exported field becomes one property. The backing field carries the
// alias declared in its `alias:"..."` struct tag, if any. Accessor methods
// are discovered from the pointer method set:
//   - read accessor: GetX() taking no arguments and returning one value
//     (a method named X would collide with the field itself)
//   - write accessor: SetX(v) taking exactly one argument
//
// A field without an explicit SetX method is still directly assignable, so
// the field itself stands in as the write accessor. Method members carry no
// alias here; accessor aliases are attached later via ApplyAliases.
//
// Pointer types are dereferenced first. Non-struct types yield nil.
func Describe(t reflect.Type) []Descriptor {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	ptr := reflect.PointerTo(t)

	var descs []Descriptor

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		d := Descriptor{
			Name:  f.Name,
			Field: &Member{Name: f.Name, Alias: tagAlias(f.Tag)},
		}

		if name, ok := readAccessor(ptr, f.Name); ok {
			d.Read = &Member{Name: name}
		}

		if name, ok := writeAccessor(ptr, f.Name); ok {
			d.Write = &Member{Name: name}
		} else {
			d.Write = &Member{Name: f.Name}
		}

		descs = append(descs, d)
	}

	return descs
}

// tagAlias extracts the alias name from a struct tag.
// Returns empty for missing tags and for the "-" marker.
func tagAlias(tag reflect.StructTag) string {
	v := tag.Get(AliasTag)
	if v == "" || v == "-" {
		return ""
	}

	// Parse first part before comma
	for i := 0; i < len(v); i++ {
		if v[i] == ',' {
			return v[:i]
		}
	}

	return v
}

// readAccessor looks for a GetX() method with no arguments and a single
// return value.
func readAccessor(ptr reflect.Type, field string) (string, bool) {
	name := "Get" + field

	m, ok := ptr.MethodByName(name)
	if !ok {
		return "", false
	}

	// Method funcs include the receiver as the first argument.
	if m.Func.Type().NumIn() != 1 || m.Func.Type().NumOut() != 1 {
		return "", false
	}

	return name, true
}

// writeAccessor looks for a SetX(v) method with exactly one argument.
// Return values are not constrained; setters returning an error still count.
func writeAccessor(ptr reflect.Type, field string) (string, bool) {
	name := "Set" + field

	m, ok := ptr.MethodByName(name)
	if !ok {
		return "", false
	}

	if m.Func.Type().NumIn() != 2 {
		return "", false
	}

	return name, true
}
