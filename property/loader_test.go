package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
types:
  - name: store.Order
    aliases:
      - property: Email
        field: email_address
      - property: Customer
        write: customer_name
        read: customerName
  - name: store.Item
    aliases:
      - property: SKU
        field: sku_code
`

	table, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, "1", table.Version)
	require.Len(t, table.Types, 2)

	order := table.Type("store.Order")
	require.NotNil(t, order)
	require.Len(t, order.Aliases, 2)

	assert.Equal(t, "Email", order.Aliases[0].Property)
	assert.Equal(t, "email_address", order.Aliases[0].Field)
	assert.Empty(t, order.Aliases[0].Read)
	assert.Empty(t, order.Aliases[0].Write)

	assert.Equal(t, "Customer", order.Aliases[1].Property)
	assert.Equal(t, "customer_name", order.Aliases[1].Write)
	assert.Equal(t, "customerName", order.Aliases[1].Read)

	assert.Nil(t, table.Type("store.Unknown"))
}

func TestParseMinimal(t *testing.T) {
	yaml := `
types:
  - name: A
`

	table, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", table.Version) // Default version
	require.Len(t, table.Types, 1)
	assert.Equal(t, "A", table.Types[0].Name)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("types: {not: [a, list"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse alias table YAML")
}

func TestLoadFile(t *testing.T) {
	table, err := LoadFile("testdata/aliases.yaml")
	require.NoError(t, err)

	order := table.Type("store.Order")
	require.NotNil(t, order)
	assert.Equal(t, "email_address", order.Aliases[0].Field)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read alias table")
}

func TestMarshalRoundTrip(t *testing.T) {
	table := &Table{
		Version: "1",
		Types: []TypeAliases{{
			Name: "store.Order",
			Aliases: []AliasEntry{
				{Property: "Email", Field: "email_address"},
			},
		}},
	}

	data, err := Marshal(table)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, table, parsed)
}

func TestValidate(t *testing.T) {
	table := &Table{
		Types: []TypeAliases{
			{
				Name: "store.Order",
				Aliases: []AliasEntry{
					{Property: "Email", Field: "email_address"},
					{Property: "Email", Field: "mail"}, // duplicate
					{Property: ""},                     // empty property
					{Property: "Status"},               // no alias at all
				},
			},
			{Name: ""}, // empty type name
		},
	}

	diags := table.Validate()

	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 3)
	assert.Equal(t, "duplicate_property", diags.Errors[0].Code)
	assert.Equal(t, "empty_property", diags.Errors[1].Code)
	assert.Equal(t, "empty_type_name", diags.Errors[2].Code)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "no_alias", diags.Warnings[0].Code)
	assert.Equal(t, "Status", diags.Warnings[0].Property)

	assert.Error(t, diags.Error())
}

func TestValidateClean(t *testing.T) {
	table := &Table{
		Types: []TypeAliases{{
			Name:    "store.Order",
			Aliases: []AliasEntry{{Property: "Email", Field: "email_address"}},
		}},
	}

	diags := table.Validate()

	assert.False(t, diags.HasErrors())
	assert.Empty(t, diags.Warnings)
	assert.NoError(t, diags.Error())
}

func TestApplyAliases(t *testing.T) {
	descs := []Descriptor{
		{
			Name:  "Email",
			Field: &Member{Name: "Email"},
			Read:  &Member{Name: "GetEmail"},
			Write: &Member{Name: "SetEmail"},
		},
		{
			Name:  "Status",
			Field: &Member{Name: "Status"},
			Write: &Member{Name: "SetStatus"},
		},
	}

	table := &Table{
		Types: []TypeAliases{{
			Name: "store.Order",
			Aliases: []AliasEntry{
				{Property: "Email", Field: "email_address", Read: "emailAddr"},
				// Read alias for a property with no read accessor is dropped.
				{Property: "Status", Read: "state", Write: "order_status"},
			},
		}},
	}

	merged := ApplyAliases(descs, table, "store.Order")

	require.Len(t, merged, 2)
	assert.Equal(t, "email_address", merged[0].Field.Alias)
	assert.Equal(t, "emailAddr", merged[0].Read.Alias)
	assert.Empty(t, merged[0].Write.Alias)

	assert.Nil(t, merged[1].Read)
	assert.Equal(t, "order_status", merged[1].Write.Alias)

	// The input descriptors are untouched.
	assert.Empty(t, descs[0].Field.Alias)
	assert.Empty(t, descs[0].Read.Alias)
	assert.Empty(t, descs[1].Write.Alias)
}

func TestApplyAliasesUnknownType(t *testing.T) {
	descs := []Descriptor{{Name: "Email", Field: &Member{Name: "Email"}}}
	table := &Table{Types: []TypeAliases{{Name: "store.Order"}}}

	merged := ApplyAliases(descs, table, "store.Other")

	assert.Equal(t, descs, merged)
}
