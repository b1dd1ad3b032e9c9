package catalog

import (
	"context"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
	"google.golang.org/protobuf/proto"
)

// CreateTag attaches tag to the Entry named entryName.
func (f *Facade) CreateTag(ctx context.Context, entryName string, tag *datacatalogpb.Tag) (*datacatalogpb.Tag, error) {
	return f.client.CreateTag(ctx, &datacatalogpb.CreateTagRequest{
		Parent: entryName,
		Tag:    tag,
	})
}

// ListTags lists every Tag attached to the Entry named entryName.
func (f *Facade) ListTags(ctx context.Context, entryName string) ([]*datacatalogpb.Tag, error) {
	return f.client.ListTags(ctx, &datacatalogpb.ListTagsRequest{Parent: entryName})
}

// UpdateTag replaces every mutable field of tag.
func (f *Facade) UpdateTag(ctx context.Context, tag *datacatalogpb.Tag) (*datacatalogpb.Tag, error) {
	return f.client.UpdateTag(ctx, &datacatalogpb.UpdateTagRequest{
		Tag:        tag,
		UpdateMask: nil,
	})
}

// UpsertTags creates or updates tags on entry, one Tag per template.
//
// The entry's tags are listed once, before any tag is processed. A tag whose
// template has no persisted tag is created; one whose fields differ from the
// persisted tag is updated under the persisted tag's name; otherwise nothing
// is sent. The caller's tags are not modified.
func (f *Facade) UpsertTags(ctx context.Context, entry *datacatalogpb.Entry, tags []*datacatalogpb.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	persistedTags, err := f.ListTags(ctx, entry.GetName())
	if err != nil {
		return err
	}

	for _, tag := range tags {
		// With several persisted tags on one template, the first listed wins.
		persisted := findTagByTemplate(persistedTags, tag.GetTemplate())

		if persisted == nil {
			created, err := f.CreateTag(ctx, entry.GetName(), tag)
			if err != nil {
				return err
			}
			f.observe(Event{Kind: KindTag, Outcome: OutcomeCreated, Name: created.GetName()})
			continue
		}

		if TagFieldsAreEqual(tag, persisted) {
			f.observe(Event{Kind: KindTag, Outcome: OutcomeUpToDate, Name: persisted.GetName()})
			continue
		}

		toUpdate := proto.Clone(tag).(*datacatalogpb.Tag)
		toUpdate.Name = persisted.GetName()
		if _, err := f.UpdateTag(ctx, toUpdate); err != nil {
			return err
		}
		f.observe(Event{Kind: KindTag, Outcome: OutcomeUpdated, Name: toUpdate.GetName()})
	}

	return nil
}

func findTagByTemplate(tags []*datacatalogpb.Tag, template string) *datacatalogpb.Tag {
	for _, t := range tags {
		if t.GetTemplate() == template {
			return t
		}
	}
	return nil
}

// TagFieldsAreEqual compares the values of a's fields with the same fields
// on b. Only a's field ids are visited, so fields present on b alone are
// ignored; a field missing from b compares as its zero value.
func TagFieldsAreEqual(a, b *datacatalogpb.Tag) bool {
	bFields := b.GetFields()
	for fieldID, aField := range a.GetFields() {
		bField := bFields[fieldID]

		if aField.GetBoolValue() != bField.GetBoolValue() ||
			aField.GetDoubleValue() != bField.GetDoubleValue() ||
			aField.GetStringValue() != bField.GetStringValue() ||
			aField.GetTimestampValue().GetSeconds() != bField.GetTimestampValue().GetSeconds() ||
			aField.GetEnumValue().GetDisplayName() != bField.GetEnumValue().GetDisplayName() {
			return false
		}
	}
	return true
}
