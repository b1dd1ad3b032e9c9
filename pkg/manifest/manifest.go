// ABOUTME: Manifest parsing, validation and conversion to Data Catalog messages
// ABOUTME: YAML is decoded with gopkg.in/yaml.v3

package manifest

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gopkg.in/yaml.v3"

	"github.com/nainya/catalogsync/pkg/catalog"
)

var primitiveTypes = map[string]datacatalogpb.FieldType_PrimitiveType{
	"string":    datacatalogpb.FieldType_STRING,
	"double":    datacatalogpb.FieldType_DOUBLE,
	"bool":      datacatalogpb.FieldType_BOOL,
	"timestamp": datacatalogpb.FieldType_TIMESTAMP,
	"richtext":  datacatalogpb.FieldType_RICHTEXT,
}

// Load reads and validates the manifest at path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks ids, field types and tag values
func (m *Manifest) Validate() error {
	if m.Location == "" {
		return fmt.Errorf("manifest: location is required")
	}

	templates := make(map[string]bool, len(m.TagTemplates))
	for _, t := range m.TagTemplates {
		if t.ID == "" {
			return fmt.Errorf("manifest: tag template without id")
		}
		if templates[t.ID] {
			return fmt.Errorf("manifest: duplicate tag template %q", t.ID)
		}
		templates[t.ID] = true

		for fieldID, f := range t.Fields {
			if _, ok := primitiveTypes[f.Type]; !ok && f.Type != "enum" {
				return fmt.Errorf("manifest: tag template %q field %q has unknown type %q", t.ID, fieldID, f.Type)
			}
			if f.Type == "enum" && len(f.EnumValues) == 0 {
				return fmt.Errorf("manifest: tag template %q enum field %q has no values", t.ID, fieldID)
			}
		}
	}

	groups := make(map[string]bool, len(m.EntryGroups))
	for _, g := range m.EntryGroups {
		if g.ID == "" {
			return fmt.Errorf("manifest: entry group without id")
		}
		if groups[g.ID] {
			return fmt.Errorf("manifest: duplicate entry group %q", g.ID)
		}
		groups[g.ID] = true

		entries := make(map[string]bool, len(g.Entries))
		for _, e := range g.Entries {
			if e.ID == "" {
				return fmt.Errorf("manifest: entry group %q has an entry without id", g.ID)
			}
			if entries[e.ID] {
				return fmt.Errorf("manifest: entry group %q has duplicate entry %q", g.ID, e.ID)
			}
			entries[e.ID] = true

			if e.Type == "" || e.System == "" {
				return fmt.Errorf("manifest: entry %q needs both system and type", e.ID)
			}
			if err := validateTags(e, templates); err != nil {
				return err
			}
		}
	}

	if m.Prune != nil && strings.TrimSpace(m.Prune.Query) == "" {
		return fmt.Errorf("manifest: prune requires a query")
	}
	return nil
}

func validateTags(e Entry, templates map[string]bool) error {
	seen := map[string]bool{}
	for _, tag := range e.Tags {
		if tag.Template == "" {
			return fmt.Errorf("manifest: entry %q has a tag without template", e.ID)
		}
		if !isResourceName(tag.Template) && !templates[tag.Template] {
			return fmt.Errorf("manifest: entry %q references undeclared tag template %q", e.ID, tag.Template)
		}
		if seen[tag.Template] {
			return fmt.Errorf("manifest: entry %q has more than one tag for template %q", e.ID, tag.Template)
		}
		seen[tag.Template] = true

		for fieldID, v := range tag.Fields {
			if v.kinds() != 1 {
				return fmt.Errorf("manifest: entry %q tag %q field %q must set exactly one value", e.ID, tag.Template, fieldID)
			}
		}
	}
	return nil
}

func (v FieldValue) kinds() int {
	n := 0
	for _, set := range []bool{v.String != nil, v.Double != nil, v.Bool != nil, v.Timestamp != nil, v.Enum != nil} {
		if set {
			n++
		}
	}
	return n
}

func isResourceName(s string) bool {
	return strings.HasPrefix(s, "projects/")
}

// TemplateName resolves a template reference to its resource name
func (m *Manifest) TemplateName(projectID, template string) string {
	if isResourceName(template) {
		return template
	}
	return catalog.TagTemplateName(projectID, m.Location, template)
}

// EntryGroupName returns the resource name of group g
func (m *Manifest) EntryGroupName(projectID string, g EntryGroup) string {
	return catalog.EntryGroupName(projectID, m.Location, g.ID)
}

// TagTemplateProto converts t to a Data Catalog tag template. Field order
// follows the sorted field ids.
func (t TagTemplate) TagTemplateProto() *datacatalogpb.TagTemplate {
	ids := make([]string, 0, len(t.Fields))
	for id := range t.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fields := make(map[string]*datacatalogpb.TagTemplateField, len(t.Fields))
	for i, id := range ids {
		f := t.Fields[id]
		fields[id] = &datacatalogpb.TagTemplateField{
			DisplayName: f.DisplayName,
			Type:        fieldType(f),
			IsRequired:  f.Required,
			Description: f.Description,
			Order:       int32(len(ids) - i),
		}
	}

	return &datacatalogpb.TagTemplate{
		DisplayName: t.DisplayName,
		Fields:      fields,
	}
}

func fieldType(f TemplateField) *datacatalogpb.FieldType {
	if f.Type == "enum" {
		values := make([]*datacatalogpb.FieldType_EnumType_EnumValue, 0, len(f.EnumValues))
		for _, v := range f.EnumValues {
			values = append(values, &datacatalogpb.FieldType_EnumType_EnumValue{DisplayName: v})
		}
		return &datacatalogpb.FieldType{
			TypeDecl: &datacatalogpb.FieldType_EnumType_{
				EnumType: &datacatalogpb.FieldType_EnumType{AllowedValues: values},
			},
		}
	}
	return &datacatalogpb.FieldType{
		TypeDecl: &datacatalogpb.FieldType_PrimitiveType_{PrimitiveType: primitiveTypes[f.Type]},
	}
}

// EntryProto converts e to a Data Catalog entry named under groupName
func (e Entry) EntryProto(groupName string) *datacatalogpb.Entry {
	entry := &datacatalogpb.Entry{
		Name:           catalog.EntryName(groupName, e.ID),
		DisplayName:    e.DisplayName,
		Description:    e.Description,
		LinkedResource: e.LinkedResource,
		System:         &datacatalogpb.Entry_UserSpecifiedSystem{UserSpecifiedSystem: e.System},
		EntryType:      &datacatalogpb.Entry_UserSpecifiedType{UserSpecifiedType: e.Type},
	}
	if e.UpdateTime != nil {
		entry.SourceSystemTimestamps = &datacatalogpb.SystemTimestamps{
			UpdateTime: timestamppb.New(*e.UpdateTime),
		}
	}
	return entry
}

// TagProtos converts the tags of e, resolving template references
func (m *Manifest) TagProtos(projectID string, e Entry) []*datacatalogpb.Tag {
	tags := make([]*datacatalogpb.Tag, 0, len(e.Tags))
	for _, t := range e.Tags {
		tag := &datacatalogpb.Tag{
			Template: m.TemplateName(projectID, t.Template),
			Fields:   make(map[string]*datacatalogpb.TagField, len(t.Fields)),
		}
		if t.Column != "" {
			tag.Scope = &datacatalogpb.Tag_Column{Column: t.Column}
		}
		for id, v := range t.Fields {
			tag.Fields[id] = v.TagField()
		}
		tags = append(tags, tag)
	}
	return tags
}

// TagField converts v to its Data Catalog representation
func (v FieldValue) TagField() *datacatalogpb.TagField {
	switch {
	case v.String != nil:
		return &datacatalogpb.TagField{Kind: &datacatalogpb.TagField_StringValue{StringValue: *v.String}}
	case v.Double != nil:
		return &datacatalogpb.TagField{Kind: &datacatalogpb.TagField_DoubleValue{DoubleValue: *v.Double}}
	case v.Bool != nil:
		return &datacatalogpb.TagField{Kind: &datacatalogpb.TagField_BoolValue{BoolValue: *v.Bool}}
	case v.Timestamp != nil:
		return &datacatalogpb.TagField{Kind: &datacatalogpb.TagField_TimestampValue{TimestampValue: timestamppb.New(*v.Timestamp)}}
	case v.Enum != nil:
		return &datacatalogpb.TagField{Kind: &datacatalogpb.TagField_EnumValue_{
			EnumValue: &datacatalogpb.TagField_EnumValue{DisplayName: *v.Enum},
		}}
	}
	return &datacatalogpb.TagField{}
}
