// ABOUTME: Remote Data Catalog client contract consumed by the facade
// ABOUTME: Paged calls return fully drained slices

package catalog

import (
	"context"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
)

// Client is the subset of the Data Catalog API the facade delegates to.
// internal/remote adapts the SDK client to it; tests use in-memory fakes.
type Client interface {
	CreateEntry(ctx context.Context, req *datacatalogpb.CreateEntryRequest) (*datacatalogpb.Entry, error)
	GetEntry(ctx context.Context, req *datacatalogpb.GetEntryRequest) (*datacatalogpb.Entry, error)
	UpdateEntry(ctx context.Context, req *datacatalogpb.UpdateEntryRequest) (*datacatalogpb.Entry, error)
	DeleteEntry(ctx context.Context, req *datacatalogpb.DeleteEntryRequest) error

	CreateEntryGroup(ctx context.Context, req *datacatalogpb.CreateEntryGroupRequest) (*datacatalogpb.EntryGroup, error)
	DeleteEntryGroup(ctx context.Context, req *datacatalogpb.DeleteEntryGroupRequest) error

	CreateTagTemplate(ctx context.Context, req *datacatalogpb.CreateTagTemplateRequest) (*datacatalogpb.TagTemplate, error)
	GetTagTemplate(ctx context.Context, req *datacatalogpb.GetTagTemplateRequest) (*datacatalogpb.TagTemplate, error)
	DeleteTagTemplate(ctx context.Context, req *datacatalogpb.DeleteTagTemplateRequest) error

	CreateTag(ctx context.Context, req *datacatalogpb.CreateTagRequest) (*datacatalogpb.Tag, error)
	ListTags(ctx context.Context, req *datacatalogpb.ListTagsRequest) ([]*datacatalogpb.Tag, error)
	UpdateTag(ctx context.Context, req *datacatalogpb.UpdateTagRequest) (*datacatalogpb.Tag, error)

	SearchCatalog(ctx context.Context, req *datacatalogpb.SearchCatalogRequest) ([]*datacatalogpb.SearchCatalogResult, error)
}
