// Package property models the properties of a record type as seen by the
// matcher: a descriptor per property plus optional alias metadata attached to
// its backing field or accessor methods.
//
// Key capabilities:
//   - Descriptor / Member value model consumed by the match package
//   - Describe: reflection-based descriptor enumeration for struct types
//   - YAML alias tables attaching aliases to fields and accessors at
//     registration time (LoadFile, Parse, Validate, ApplyAliases)
package property
