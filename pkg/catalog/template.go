package catalog

import (
	"context"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
)

// CreateTagTemplate creates a Tag Template in the facade's project.
func (f *Facade) CreateTagTemplate(ctx context.Context, locationID, tagTemplateID string, tagTemplate *datacatalogpb.TagTemplate) (*datacatalogpb.TagTemplate, error) {
	return f.client.CreateTagTemplate(ctx, &datacatalogpb.CreateTagTemplateRequest{
		Parent:        LocationName(f.projectID, locationID),
		TagTemplateId: tagTemplateID,
		TagTemplate:   tagTemplate,
	})
}

// GetTagTemplate retrieves a Tag Template by resource name.
func (f *Facade) GetTagTemplate(ctx context.Context, name string) (*datacatalogpb.TagTemplate, error) {
	return f.client.GetTagTemplate(ctx, &datacatalogpb.GetTagTemplateRequest{Name: name})
}

// DeleteTagTemplate force-deletes a Tag Template together with its Tags.
func (f *Facade) DeleteTagTemplate(ctx context.Context, name string) error {
	if err := f.client.DeleteTagTemplate(ctx, &datacatalogpb.DeleteTagTemplateRequest{
		Name:  name,
		Force: true,
	}); err != nil {
		return err
	}

	f.observe(Event{Kind: KindTagTemplate, Outcome: OutcomeDeleted, Name: name})
	return nil
}
