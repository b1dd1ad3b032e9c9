// Package remote adapts the Cloud Data Catalog SDK to catalog.Client
package remote

import (
	"context"
	"errors"
	"fmt"

	datacatalog "cloud.google.com/go/datacatalog/apiv1"
	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc"

	"github.com/nainya/catalogsync/internal/logger"
	"github.com/nainya/catalogsync/internal/metrics"
	"github.com/nainya/catalogsync/pkg/catalog"
)

// Options controls how the SDK client is built
type Options struct {
	// Endpoint overrides the Data Catalog API endpoint (host:port)
	Endpoint string
	Metrics  *metrics.Metrics
	Logger   *logger.Logger
}

// Client implements catalog.Client on top of *datacatalog.Client
type Client struct {
	dc *datacatalog.Client
}

var _ catalog.Client = (*Client)(nil)

// New creates a Data Catalog client. Credentials come from the
// environment unless opts say otherwise.
func New(ctx context.Context, o Options, opts ...option.ClientOption) (*Client, error) {
	var clientOpts []option.ClientOption
	if o.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(o.Endpoint))
	}
	if o.Metrics != nil || o.Logger != nil {
		clientOpts = append(clientOpts, option.WithGRPCDialOption(
			grpc.WithChainUnaryInterceptor(UnaryClientInterceptor(o.Metrics, o.Logger)),
		))
	}
	clientOpts = append(clientOpts, opts...)

	dc, err := datacatalog.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Data Catalog client: %w", err)
	}
	return &Client{dc: dc}, nil
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.dc.Close()
}

func (c *Client) CreateEntry(ctx context.Context, req *datacatalogpb.CreateEntryRequest) (*datacatalogpb.Entry, error) {
	return c.dc.CreateEntry(ctx, req)
}

func (c *Client) GetEntry(ctx context.Context, req *datacatalogpb.GetEntryRequest) (*datacatalogpb.Entry, error) {
	return c.dc.GetEntry(ctx, req)
}

func (c *Client) UpdateEntry(ctx context.Context, req *datacatalogpb.UpdateEntryRequest) (*datacatalogpb.Entry, error) {
	return c.dc.UpdateEntry(ctx, req)
}

func (c *Client) DeleteEntry(ctx context.Context, req *datacatalogpb.DeleteEntryRequest) error {
	return c.dc.DeleteEntry(ctx, req)
}

func (c *Client) CreateEntryGroup(ctx context.Context, req *datacatalogpb.CreateEntryGroupRequest) (*datacatalogpb.EntryGroup, error) {
	return c.dc.CreateEntryGroup(ctx, req)
}

func (c *Client) DeleteEntryGroup(ctx context.Context, req *datacatalogpb.DeleteEntryGroupRequest) error {
	return c.dc.DeleteEntryGroup(ctx, req)
}

func (c *Client) CreateTagTemplate(ctx context.Context, req *datacatalogpb.CreateTagTemplateRequest) (*datacatalogpb.TagTemplate, error) {
	return c.dc.CreateTagTemplate(ctx, req)
}

func (c *Client) GetTagTemplate(ctx context.Context, req *datacatalogpb.GetTagTemplateRequest) (*datacatalogpb.TagTemplate, error) {
	return c.dc.GetTagTemplate(ctx, req)
}

func (c *Client) DeleteTagTemplate(ctx context.Context, req *datacatalogpb.DeleteTagTemplateRequest) error {
	return c.dc.DeleteTagTemplate(ctx, req)
}

func (c *Client) CreateTag(ctx context.Context, req *datacatalogpb.CreateTagRequest) (*datacatalogpb.Tag, error) {
	return c.dc.CreateTag(ctx, req)
}

func (c *Client) UpdateTag(ctx context.Context, req *datacatalogpb.UpdateTagRequest) (*datacatalogpb.Tag, error) {
	return c.dc.UpdateTag(ctx, req)
}

// ListTags drains every page of tags attached to req.Parent
func (c *Client) ListTags(ctx context.Context, req *datacatalogpb.ListTagsRequest) ([]*datacatalogpb.Tag, error) {
	it := c.dc.ListTags(ctx, req)

	var tags []*datacatalogpb.Tag
	for {
		tag, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return tags, nil
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
}

// SearchCatalog drains every page of search results
func (c *Client) SearchCatalog(ctx context.Context, req *datacatalogpb.SearchCatalogRequest) ([]*datacatalogpb.SearchCatalogResult, error) {
	it := c.dc.SearchCatalog(ctx, req)

	var results []*datacatalogpb.SearchCatalogResult
	for {
		result, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return results, nil
		}
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
}
