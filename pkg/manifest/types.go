// ABOUTME: Sync manifest data model
// ABOUTME: Describes tag templates, entry groups, entries and their tags

package manifest

import "time"

// Manifest is the desired catalog state for one location
type Manifest struct {
	Location     string         `yaml:"location"`
	TagTemplates []TagTemplate  `yaml:"tag_templates"`
	EntryGroups  []EntryGroup   `yaml:"entry_groups"`
	Prune        *PruneSettings `yaml:"prune,omitempty"`
}

// TagTemplate declares a template created when missing
type TagTemplate struct {
	ID          string                   `yaml:"id"`
	DisplayName string                   `yaml:"display_name"`
	Fields      map[string]TemplateField `yaml:"fields"`
}

// TemplateField declares one typed field of a template
type TemplateField struct {
	DisplayName string   `yaml:"display_name"`
	Type        string   `yaml:"type"` // string, double, bool, timestamp, richtext, enum
	EnumValues  []string `yaml:"enum_values,omitempty"`
	Required    bool     `yaml:"required"`
	Description string   `yaml:"description,omitempty"`
}

// EntryGroup groups the entries synced under one parent
type EntryGroup struct {
	ID      string  `yaml:"id"`
	Create  bool    `yaml:"create"` // create the group before syncing entries
	Entries []Entry `yaml:"entries"`
}

// Entry is a user-specified catalog entry
type Entry struct {
	ID             string     `yaml:"id"`
	DisplayName    string     `yaml:"display_name"`
	Description    string     `yaml:"description"`
	System         string     `yaml:"system"`
	Type           string     `yaml:"type"`
	LinkedResource string     `yaml:"linked_resource"`
	UpdateTime     *time.Time `yaml:"update_time,omitempty"`
	Tags           []Tag      `yaml:"tags"`
}

// Tag attaches values of the template with id Template
type Tag struct {
	Template string                `yaml:"template"`
	Column   string                `yaml:"column,omitempty"`
	Fields   map[string]FieldValue `yaml:"fields"`
}

// FieldValue holds exactly one typed value
type FieldValue struct {
	String    *string    `yaml:"string,omitempty"`
	Double    *float64   `yaml:"double,omitempty"`
	Bool      *bool      `yaml:"bool,omitempty"`
	Timestamp *time.Time `yaml:"timestamp,omitempty"`
	Enum      *string    `yaml:"enum,omitempty"`
}

// PruneSettings selects entries deleted when not present in the manifest
type PruneSettings struct {
	Query string `yaml:"query"`
}
