// ABOUTME: Outcome reporting for facade operations
// ABOUTME: Decouples the facade from any concrete logging facility

package catalog

import (
	"fmt"
	"strings"

	"cloud.google.com/go/datacatalog/apiv1/datacatalogpb"
	"github.com/rs/zerolog"
)

// Kind identifies the catalog resource an Event refers to.
type Kind string

const (
	KindEntry       Kind = "Entry"
	KindEntryGroup  Kind = "Entry Group"
	KindTagTemplate Kind = "Tag Template"
	KindTag         Kind = "Tag"
)

// Outcome describes what happened to a resource.
type Outcome string

const (
	OutcomeCreated       Outcome = "created"
	OutcomeNotCreated    Outcome = "was not created"
	OutcomeAlreadyExists Outcome = "already exists"
	OutcomeDoesNotExist  Outcome = "does not exist"
	OutcomeUpdated       Outcome = "updated"
	OutcomeNotUpdated    Outcome = "was not updated"
	OutcomeUpToDate      Outcome = "is up-to-date"
	OutcomeDeleted       Outcome = "deleted"
	OutcomeNotDeleted    Outcome = "was not deleted"
)

// Event is a single facade outcome.
type Event struct {
	Kind    Kind
	Outcome Outcome
	// Name is the resource name; for tags it may be the template name
	// when the tag has not been persisted yet.
	Name  string
	Entry *datacatalogpb.Entry
	Err   error
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Outcome, e.Name)
}

// Observer receives facade events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// NopObserver discards every event.
var NopObserver Observer = ObserverFunc(func(Event) {})

type logObserver struct {
	log zerolog.Logger
}

// NewLogObserver returns an Observer writing events to a zerolog logger.
func NewLogObserver(l zerolog.Logger) Observer {
	return &logObserver{log: l}
}

func (o *logObserver) Observe(e Event) {
	description := fmt.Sprintf("%s %s: ", e.Kind, e.Outcome)

	switch e.Outcome {
	case OutcomeNotCreated, OutcomeNotUpdated:
		o.log.Warn().Str("kind", string(e.Kind)).Str("name", e.Name).Err(e.Err).
			Msg(description + e.Name)
		return
	case OutcomeNotDeleted:
		o.log.Info().Str("kind", string(e.Kind)).Str("name", e.Name).
			Msg("An error occurred while attempting to delete " + string(e.Kind) + ": " + e.Name)
		if e.Err != nil {
			o.log.Debug().Str("name", e.Name).Msg(e.Err.Error())
		}
		return
	}

	o.log.Info().Str("kind", string(e.Kind)).Str("name", e.Name).Msg(description + e.Name)

	if e.Entry != nil {
		o.log.Info().Str("kind", string(e.Kind)).Str("name", e.Name).
			Msgf("%s^ [%s] %s", strings.Repeat(" ", len(description)),
				e.Entry.GetUserSpecifiedType(), e.Entry.GetLinkedResource())
	}
}
