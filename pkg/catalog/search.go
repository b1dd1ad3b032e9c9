package catalog

import (
	"context"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
)

const (
	searchOrderBy  = "relevance"
	searchPageSize = 1000
)

// SearchCatalog runs query against the facade's project, ordered by relevance.
func (f *Facade) SearchCatalog(ctx context.Context, query string) ([]*datacatalogpb.SearchCatalogResult, error) {
	return f.client.SearchCatalog(ctx, &datacatalogpb.SearchCatalogRequest{
		Scope: &datacatalogpb.SearchCatalogRequest_Scope{
			IncludeProjectIds: []string{f.projectID},
		},
		Query:    query,
		OrderBy:  searchOrderBy,
		PageSize: searchPageSize,
	})
}

// SearchCatalogRelativeResourceNames runs query and returns the relative
// resource name of every result.
func (f *Facade) SearchCatalogRelativeResourceNames(ctx context.Context, query string) ([]string, error) {
	results, err := f.SearchCatalog(ctx, query)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.GetRelativeResourceName())
	}
	return names, nil
}
