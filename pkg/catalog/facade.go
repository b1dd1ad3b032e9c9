// ABOUTME: Data Catalog facade: CRUD pass-through plus upsert policy
// ABOUTME: Holds the project id and client fixed at construction

package catalog

import (
	"github.com/rs/zerolog/log"
)

// Facade wraps Data Catalog API calls for a single project.
type Facade struct {
	projectID string
	client    Client
	observer  Observer
}

// Option configures a Facade.
type Option func(*Facade)

// WithObserver sets the observer receiving operation outcomes.
func WithObserver(o Observer) Option {
	return func(f *Facade) {
		if o != nil {
			f.observer = o
		}
	}
}

// NewFacade creates a facade scoped to projectID. Without WithObserver,
// outcomes are written to the global zerolog logger.
func NewFacade(projectID string, client Client, opts ...Option) *Facade {
	f := &Facade{
		projectID: projectID,
		client:    client,
		observer:  NewLogObserver(log.Logger),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ProjectID returns the project the facade is scoped to.
func (f *Facade) ProjectID() string {
	return f.projectID
}

func (f *Facade) observe(e Event) {
	f.observer.Observe(e)
}
