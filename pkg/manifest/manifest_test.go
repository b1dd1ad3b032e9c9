// ABOUTME: Tests for manifest parsing and conversion
// ABOUTME: Covers validation failures and the produced Data Catalog messages

package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
location: us-central1
tag_templates:
  - id: ownership
    display_name: Ownership
    fields:
      owner:
        display_name: Owner
        type: string
        required: true
      tier:
        display_name: Tier
        type: enum
        enum_values: [gold, silver]
entry_groups:
  - id: postgres
    create: true
    entries:
      - id: orders
        display_name: orders
        description: Customer orders
        system: postgresql
        type: table
        linked_resource: //postgres/db/public/orders
        update_time: 2024-03-01T10:00:00Z
        tags:
          - template: ownership
            fields:
              owner: {string: data-eng}
              tier: {enum: gold}
          - template: projects/shared/locations/us/tagTemplates/quality
            column: id
            fields:
              score: {double: 0.75}
              pii: {bool: false}
              checked: {timestamp: 2024-03-02T00:00:00Z}
prune:
  query: system=postgresql
`

func TestParseSample(t *testing.T) {
	m, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, m.EntryGroups, 1)
	g := m.EntryGroups[0]
	assert.True(t, g.Create)
	require.Len(t, g.Entries, 1)
	assert.Equal(t, "system=postgresql", m.Prune.Query)

	groupName := m.EntryGroupName("proj", g)
	assert.Equal(t, "projects/proj/locations/us-central1/entryGroups/postgres", groupName)

	entry := g.Entries[0].EntryProto(groupName)
	assert.Equal(t, groupName+"/entries/orders", entry.GetName())
	assert.Equal(t, "postgresql", entry.GetUserSpecifiedSystem())
	assert.Equal(t, "table", entry.GetUserSpecifiedType())
	assert.Equal(t, "//postgres/db/public/orders", entry.GetLinkedResource())
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).Unix(),
		entry.GetSourceSystemTimestamps().GetUpdateTime().GetSeconds())

	tags := m.TagProtos("proj", g.Entries[0])
	require.Len(t, tags, 2)
	assert.Equal(t, "projects/proj/locations/us-central1/tagTemplates/ownership", tags[0].GetTemplate())
	assert.Equal(t, "data-eng", tags[0].GetFields()["owner"].GetStringValue())
	assert.Equal(t, "gold", tags[0].GetFields()["tier"].GetEnumValue().GetDisplayName())

	assert.Equal(t, "projects/shared/locations/us/tagTemplates/quality", tags[1].GetTemplate())
	assert.Equal(t, "id", tags[1].GetColumn())
	assert.Equal(t, 0.75, tags[1].GetFields()["score"].GetDoubleValue())
	assert.NotNil(t, tags[1].GetFields()["pii"].GetKind())
	assert.False(t, tags[1].GetFields()["pii"].GetBoolValue())
	assert.NotZero(t, tags[1].GetFields()["checked"].GetTimestampValue().GetSeconds())
}

func TestTagTemplateProto(t *testing.T) {
	m, err := Parse([]byte(sample))
	require.NoError(t, err)

	tmpl := m.TagTemplates[0].TagTemplateProto()
	assert.Equal(t, "Ownership", tmpl.GetDisplayName())
	require.Len(t, tmpl.GetFields(), 2)

	owner := tmpl.GetFields()["owner"]
	assert.True(t, owner.GetIsRequired())
	assert.Equal(t, datacatalogpb.FieldType_STRING, owner.GetType().GetPrimitiveType())

	tier := tmpl.GetFields()["tier"]
	values := tier.GetType().GetEnumType().GetAllowedValues()
	require.Len(t, values, 2)
	assert.Equal(t, "gold", values[0].GetDisplayName())

	// Higher order is listed first.
	assert.Greater(t, owner.GetOrder(), tier.GetOrder())
}

func TestEntryWithoutUpdateTime(t *testing.T) {
	e := Entry{ID: "x", System: "s", Type: "t"}
	assert.Nil(t, e.EntryProto("g").GetSourceSystemTimestamps())
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing location": `entry_groups: []`,
		"unknown key":      "location: us\nbogus: 1\n",
		"bad field type": `
location: us
tag_templates:
  - id: t
    fields:
      f: {type: integer}
`,
		"enum without values": `
location: us
tag_templates:
  - id: t
    fields:
      f: {type: enum}
`,
		"duplicate entry": `
location: us
entry_groups:
  - id: g
    entries:
      - {id: e, system: s, type: t}
      - {id: e, system: s, type: t}
`,
		"entry without type": `
location: us
entry_groups:
  - id: g
    entries:
      - {id: e, system: s}
`,
		"undeclared template": `
location: us
entry_groups:
  - id: g
    entries:
      - id: e
        system: s
        type: t
        tags:
          - template: nope
`,
		"two values": `
location: us
tag_templates:
  - id: t
entry_groups:
  - id: g
    entries:
      - id: e
        system: s
        type: t
        tags:
          - template: t
            fields:
              f: {string: a, bool: true}
`,
		"two tags one template": `
location: us
tag_templates:
  - id: t
entry_groups:
  - id: g
    entries:
      - id: e
        system: s
        type: t
        tags:
          - template: t
          - template: t
`,
		"empty prune query": `
location: us
prune:
  query: " "
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "us-central1", m.Location)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
