package catalog

import (
	"context"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
)

// CreateEntryGroup creates an empty Entry Group in the facade's project.
func (f *Facade) CreateEntryGroup(ctx context.Context, locationID, entryGroupID string) (*datacatalogpb.EntryGroup, error) {
	group, err := f.client.CreateEntryGroup(ctx, &datacatalogpb.CreateEntryGroupRequest{
		Parent:       LocationName(f.projectID, locationID),
		EntryGroupId: entryGroupID,
		EntryGroup:   &datacatalogpb.EntryGroup{},
	})
	if err != nil {
		return nil, err
	}

	f.observe(Event{Kind: KindEntryGroup, Outcome: OutcomeCreated, Name: group.GetName()})
	return group, nil
}

// DeleteEntryGroup deletes an Entry Group.
func (f *Facade) DeleteEntryGroup(ctx context.Context, name string) error {
	return f.client.DeleteEntryGroup(ctx, &datacatalogpb.DeleteEntryGroupRequest{Name: name})
}
