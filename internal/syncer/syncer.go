// Package syncer applies a manifest to Data Catalog through the facade
package syncer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
	"golang.org/x/time/rate"

	"github.com/nainya/catalogsync/internal/logger"
	"github.com/nainya/catalogsync/pkg/catalog"
	"github.com/nainya/catalogsync/pkg/manifest"
)

// Catalog is the part of catalog.Facade the syncer drives
type Catalog interface {
	ProjectID() string
	GetTagTemplate(ctx context.Context, name string) (*datacatalogpb.TagTemplate, error)
	CreateTagTemplate(ctx context.Context, locationID, tagTemplateID string, tagTemplate *datacatalogpb.TagTemplate) (*datacatalogpb.TagTemplate, error)
	CreateEntryGroup(ctx context.Context, locationID, entryGroupID string) (*datacatalogpb.EntryGroup, error)
	UpsertEntry(ctx context.Context, entryGroupName, entryID string, entry *datacatalogpb.Entry) (*datacatalogpb.Entry, error)
	UpsertTags(ctx context.Context, entry *datacatalogpb.Entry, tags []*datacatalogpb.Tag) error
	SearchCatalogRelativeResourceNames(ctx context.Context, query string) ([]string, error)
	DeleteEntry(ctx context.Context, name string)
}

var _ Catalog = (*catalog.Facade)(nil)

// Result summarizes one sync run
type Result struct {
	Templates int // tag templates created
	Groups    int // entry groups created
	Entries   int // entries upserted
	Deleted   int // stale entries passed to DeleteEntry
}

// Syncer applies manifests sequentially
type Syncer struct {
	cat     Catalog
	limiter *rate.Limiter
	log     *logger.Logger
}

// New creates a Syncer. A positive qps throttles entry upserts. A nil log
// falls back to the global logger.
func New(cat Catalog, qps float64, log *logger.Logger) *Syncer {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	s := &Syncer{cat: cat, log: log.CatalogLogger("syncer")}
	if qps > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(qps), 1)
	}
	return s
}

// Run ensures templates and groups exist, upserts every entry with its
// tags, then prunes entries matched by the manifest's prune query that
// were not part of this run.
func (s *Syncer) Run(ctx context.Context, m *manifest.Manifest) (*Result, error) {
	start := time.Now()
	res := &Result{}
	projectID := s.cat.ProjectID()

	for _, t := range m.TagTemplates {
		created, err := s.ensureTagTemplate(ctx, m, t)
		if err != nil {
			return res, err
		}
		if created {
			res.Templates++
		}
	}

	synced := make(map[string]bool)
	for _, g := range m.EntryGroups {
		if g.Create {
			if _, err := s.cat.CreateEntryGroup(ctx, m.Location, g.ID); err != nil {
				if !catalog.IsAlreadyExists(err) {
					return res, fmt.Errorf("failed to create entry group %s: %w", g.ID, err)
				}
			} else {
				res.Groups++
			}
		}

		groupName := m.EntryGroupName(projectID, g)
		for _, e := range g.Entries {
			if err := s.wait(ctx); err != nil {
				return res, err
			}

			input := e.EntryProto(groupName)
			persisted, err := s.cat.UpsertEntry(ctx, groupName, e.ID, input)
			if err != nil {
				return res, fmt.Errorf("failed to upsert entry %s: %w", e.ID, err)
			}
			res.Entries++
			synced[catalog.EntryName(groupName, e.ID)] = true

			// The facade hands back the input message when nothing was
			// persisted, so there is no entry to attach tags to.
			if persisted == input {
				s.log.Warn("Skipping tags of entry that was not persisted").
					Str("entry", input.GetName()).
					Send()
				continue
			}
			if err := s.cat.UpsertTags(ctx, persisted, m.TagProtos(projectID, e)); err != nil {
				return res, fmt.Errorf("failed to upsert tags of %s: %w", persisted.GetName(), err)
			}
		}
	}

	if m.Prune != nil {
		deleted, err := s.prune(ctx, m.Prune.Query, synced)
		res.Deleted = deleted
		if err != nil {
			return res, err
		}
	}

	s.log.LogSyncDone(res.Templates, res.Groups, res.Entries, res.Deleted, time.Since(start))
	return res, nil
}

func (s *Syncer) ensureTagTemplate(ctx context.Context, m *manifest.Manifest, t manifest.TagTemplate) (bool, error) {
	name := m.TemplateName(s.cat.ProjectID(), t.ID)

	_, err := s.cat.GetTagTemplate(ctx, name)
	if err == nil {
		return false, nil
	}
	if !catalog.IsNotFound(err) && !catalog.IsPermissionDenied(err) {
		return false, fmt.Errorf("failed to get tag template %s: %w", name, err)
	}

	if _, err := s.cat.CreateTagTemplate(ctx, m.Location, t.ID, t.TagTemplateProto()); err != nil {
		return false, fmt.Errorf("failed to create tag template %s: %w", name, err)
	}
	return true, nil
}

func (s *Syncer) prune(ctx context.Context, query string, synced map[string]bool) (int, error) {
	names, err := s.cat.SearchCatalogRelativeResourceNames(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to search entries to prune: %w", err)
	}

	deleted := 0
	for _, name := range names {
		if synced[name] || !strings.Contains(name, "/entries/") {
			continue
		}
		s.cat.DeleteEntry(ctx, name)
		deleted++
	}
	return deleted, nil
}

func (s *Syncer) wait(ctx context.Context) error {
	if s.limiter == nil {
		return ctx.Err()
	}
	return s.limiter.Wait(ctx)
}
