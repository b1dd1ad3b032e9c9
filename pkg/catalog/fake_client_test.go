package catalog

import (
	"context"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
	"google.golang.org/protobuf/proto"
)

// fakeClient records every request and answers from configured values.
type fakeClient struct {
	entries map[string]*datacatalogpb.Entry
	tags    []*datacatalogpb.Tag
	results []*datacatalogpb.SearchCatalogResult

	createEntryErr error
	getEntryErr    error
	updateEntryErr error
	deleteEntryErr error
	listTagsErr    error

	createEntryReqs []*datacatalogpb.CreateEntryRequest
	getEntryReqs    []*datacatalogpb.GetEntryRequest
	updateEntryReqs []*datacatalogpb.UpdateEntryRequest
	deleteEntryReqs []*datacatalogpb.DeleteEntryRequest
	groupReqs       []*datacatalogpb.CreateEntryGroupRequest
	deleteGroupReqs []*datacatalogpb.DeleteEntryGroupRequest
	templateReqs    []*datacatalogpb.CreateTagTemplateRequest
	getTemplateReqs []*datacatalogpb.GetTagTemplateRequest
	delTemplateReqs []*datacatalogpb.DeleteTagTemplateRequest
	createTagReqs   []*datacatalogpb.CreateTagRequest
	listTagsReqs    []*datacatalogpb.ListTagsRequest
	updateTagReqs   []*datacatalogpb.UpdateTagRequest
	searchReqs      []*datacatalogpb.SearchCatalogRequest
}

func newFakeClient() *fakeClient {
	return &fakeClient{entries: map[string]*datacatalogpb.Entry{}}
}

func (c *fakeClient) CreateEntry(_ context.Context, req *datacatalogpb.CreateEntryRequest) (*datacatalogpb.Entry, error) {
	c.createEntryReqs = append(c.createEntryReqs, req)
	if c.createEntryErr != nil {
		return nil, c.createEntryErr
	}
	created := proto.Clone(req.GetEntry()).(*datacatalogpb.Entry)
	created.Name = EntryName(req.GetParent(), req.GetEntryId())
	c.entries[created.Name] = created
	return created, nil
}

func (c *fakeClient) GetEntry(_ context.Context, req *datacatalogpb.GetEntryRequest) (*datacatalogpb.Entry, error) {
	c.getEntryReqs = append(c.getEntryReqs, req)
	if c.getEntryErr != nil {
		return nil, c.getEntryErr
	}
	e, ok := c.entries[req.GetName()]
	if !ok {
		return nil, permissionDenied()
	}
	return e, nil
}

func (c *fakeClient) UpdateEntry(_ context.Context, req *datacatalogpb.UpdateEntryRequest) (*datacatalogpb.Entry, error) {
	c.updateEntryReqs = append(c.updateEntryReqs, req)
	if c.updateEntryErr != nil {
		return nil, c.updateEntryErr
	}
	updated := proto.Clone(req.GetEntry()).(*datacatalogpb.Entry)
	c.entries[updated.Name] = updated
	return updated, nil
}

func (c *fakeClient) DeleteEntry(_ context.Context, req *datacatalogpb.DeleteEntryRequest) error {
	c.deleteEntryReqs = append(c.deleteEntryReqs, req)
	if c.deleteEntryErr != nil {
		return c.deleteEntryErr
	}
	delete(c.entries, req.GetName())
	return nil
}

func (c *fakeClient) CreateEntryGroup(_ context.Context, req *datacatalogpb.CreateEntryGroupRequest) (*datacatalogpb.EntryGroup, error) {
	c.groupReqs = append(c.groupReqs, req)
	return &datacatalogpb.EntryGroup{Name: req.GetParent() + "/entryGroups/" + req.GetEntryGroupId()}, nil
}

func (c *fakeClient) DeleteEntryGroup(_ context.Context, req *datacatalogpb.DeleteEntryGroupRequest) error {
	c.deleteGroupReqs = append(c.deleteGroupReqs, req)
	return nil
}

func (c *fakeClient) CreateTagTemplate(_ context.Context, req *datacatalogpb.CreateTagTemplateRequest) (*datacatalogpb.TagTemplate, error) {
	c.templateReqs = append(c.templateReqs, req)
	t := proto.Clone(req.GetTagTemplate()).(*datacatalogpb.TagTemplate)
	t.Name = req.GetParent() + "/tagTemplates/" + req.GetTagTemplateId()
	return t, nil
}

func (c *fakeClient) GetTagTemplate(_ context.Context, req *datacatalogpb.GetTagTemplateRequest) (*datacatalogpb.TagTemplate, error) {
	c.getTemplateReqs = append(c.getTemplateReqs, req)
	return &datacatalogpb.TagTemplate{Name: req.GetName()}, nil
}

func (c *fakeClient) DeleteTagTemplate(_ context.Context, req *datacatalogpb.DeleteTagTemplateRequest) error {
	c.delTemplateReqs = append(c.delTemplateReqs, req)
	return nil
}

func (c *fakeClient) CreateTag(_ context.Context, req *datacatalogpb.CreateTagRequest) (*datacatalogpb.Tag, error) {
	c.createTagReqs = append(c.createTagReqs, req)
	t := proto.Clone(req.GetTag()).(*datacatalogpb.Tag)
	t.Name = req.GetParent() + "/tags/created"
	return t, nil
}

func (c *fakeClient) ListTags(_ context.Context, req *datacatalogpb.ListTagsRequest) ([]*datacatalogpb.Tag, error) {
	c.listTagsReqs = append(c.listTagsReqs, req)
	if c.listTagsErr != nil {
		return nil, c.listTagsErr
	}
	return c.tags, nil
}

func (c *fakeClient) UpdateTag(_ context.Context, req *datacatalogpb.UpdateTagRequest) (*datacatalogpb.Tag, error) {
	c.updateTagReqs = append(c.updateTagReqs, req)
	return req.GetTag(), nil
}

func (c *fakeClient) SearchCatalog(_ context.Context, req *datacatalogpb.SearchCatalogRequest) ([]*datacatalogpb.SearchCatalogResult, error) {
	c.searchReqs = append(c.searchReqs, req)
	return c.results, nil
}

// recorder collects observed events.
type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) { r.events = append(r.events, e) }

func (r *recorder) outcomes() []Outcome {
	out := make([]Outcome, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Outcome)
	}
	return out
}
