package catalog

import (
	"context"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
)

// CreateEntry creates an Entry under entryGroupName. When the service
// denies permission the unpersisted input entry is returned with a nil error.
func (f *Facade) CreateEntry(ctx context.Context, entryGroupName, entryID string, entry *datacatalogpb.Entry) (*datacatalogpb.Entry, error) {
	created, err := f.client.CreateEntry(ctx, &datacatalogpb.CreateEntryRequest{
		Parent:  entryGroupName,
		EntryId: entryID,
		Entry:   entry,
	})
	if err != nil {
		if IsPermissionDenied(err) {
			f.observe(Event{Kind: KindEntry, Outcome: OutcomeNotCreated, Name: EntryName(entryGroupName, entryID), Err: err})
			return entry, nil
		}
		return nil, err
	}

	f.observe(Event{Kind: KindEntry, Outcome: OutcomeCreated, Name: created.GetName(), Entry: created})
	return created, nil
}

// GetEntry retrieves an Entry by resource name.
func (f *Facade) GetEntry(ctx context.Context, name string) (*datacatalogpb.Entry, error) {
	return f.client.GetEntry(ctx, &datacatalogpb.GetEntryRequest{Name: name})
}

// UpdateEntry replaces every mutable field of entry.
func (f *Facade) UpdateEntry(ctx context.Context, entry *datacatalogpb.Entry) (*datacatalogpb.Entry, error) {
	updated, err := f.client.UpdateEntry(ctx, &datacatalogpb.UpdateEntryRequest{
		Entry:      entry,
		UpdateMask: nil,
	})
	if err != nil {
		return nil, err
	}

	f.observe(Event{Kind: KindEntry, Outcome: OutcomeUpdated, Name: updated.GetName(), Entry: updated})
	return updated, nil
}

// UpsertEntry updates the Entry if it exists and has changed, or creates
// it if it does not exist.
//
// A permission-denied answer to the read or the update is treated as
// "does not exist" and the entry is created. A failed-precondition read
// returns the input entry; a failed-precondition update returns the
// persisted one. Either way the catalog is left untouched.
func (f *Facade) UpsertEntry(ctx context.Context, entryGroupName, entryID string, entry *datacatalogpb.Entry) (*datacatalogpb.Entry, error) {
	entryName := EntryName(entryGroupName, entryID)

	persisted, err := f.GetEntry(ctx, entryName)
	if err != nil {
		switch {
		case IsPermissionDenied(err):
			f.observe(Event{Kind: KindEntry, Outcome: OutcomeDoesNotExist, Name: entryName})
			return f.CreateEntry(ctx, entryGroupName, entryID, entry)
		case IsFailedPrecondition(err):
			f.observe(Event{Kind: KindEntry, Outcome: OutcomeNotUpdated, Name: entryName, Err: err})
			return entry, nil
		default:
			return nil, err
		}
	}

	f.observe(Event{Kind: KindEntry, Outcome: OutcomeAlreadyExists, Name: entryName})

	if !EntryWasUpdated(persisted, entry) {
		f.observe(Event{Kind: KindEntry, Outcome: OutcomeUpToDate, Name: persisted.GetName(), Entry: persisted})
		return persisted, nil
	}

	updated, err := f.UpdateEntry(ctx, entry)
	if err != nil {
		switch {
		case IsPermissionDenied(err):
			f.observe(Event{Kind: KindEntry, Outcome: OutcomeDoesNotExist, Name: entryName})
			return f.CreateEntry(ctx, entryGroupName, entryID, entry)
		case IsFailedPrecondition(err):
			f.observe(Event{Kind: KindEntry, Outcome: OutcomeNotUpdated, Name: entryName, Err: err})
			return persisted, nil
		default:
			return nil, err
		}
	}
	return updated, nil
}

// DeleteEntry deletes an Entry. Failures are reported to the observer
// and never returned.
func (f *Facade) DeleteEntry(ctx context.Context, name string) {
	if err := f.client.DeleteEntry(ctx, &datacatalogpb.DeleteEntryRequest{Name: name}); err != nil {
		f.observe(Event{Kind: KindEntry, Outcome: OutcomeNotDeleted, Name: name, Err: err})
		return
	}
	f.observe(Event{Kind: KindEntry, Outcome: OutcomeDeleted, Name: name})
}

// EntryWasUpdated reports whether newEntry differs from current.
//
// A nonzero source-system update time on newEntry that differs from the
// persisted one counts as a change on its own; otherwise the user-specified
// system and type, display name, description and linked resource are compared.
func EntryWasUpdated(current, newEntry *datacatalogpb.Entry) bool {
	currentUpdateTime := current.GetSourceSystemTimestamps().GetUpdateTime().GetSeconds()
	newUpdateTime := newEntry.GetSourceSystemTimestamps().GetUpdateTime().GetSeconds()

	if newUpdateTime != 0 && currentUpdateTime != newUpdateTime {
		return true
	}
	return !EntriesAreEqual(current, newEntry)
}

// EntriesAreEqual compares the fields an upsert is allowed to change.
func EntriesAreEqual(a, b *datacatalogpb.Entry) bool {
	return a.GetUserSpecifiedSystem() == b.GetUserSpecifiedSystem() &&
		a.GetUserSpecifiedType() == b.GetUserSpecifiedType() &&
		a.GetDisplayName() == b.GetDisplayName() &&
		a.GetDescription() == b.GetDescription() &&
		a.GetLinkedResource() == b.GetLinkedResource()
}
