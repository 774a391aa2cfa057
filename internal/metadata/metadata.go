package metadata

import (
	"context"
	"fmt"
	"time"
)

// Record contains the descriptive tags of a single song.
// A nil field is absent, which is distinct from a present empty value.
// Records are passed by value and never modified through their pointers;
// every transformation builds a new Record.
type Record struct {
	Title         *string
	Artist        *string
	Album         *string
	AlbumArtist   *string
	Composer      *string
	Genre         *string
	TrackNumber   *uint16
	DiscNumber    *uint16
	Year          *uint16
	Comment       *string
	Duration      *time.Duration // compared with a tolerance, never written to tags
	TotalTracks   *uint16
	TotalDiscs    *uint16
	IsCompilation *bool
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

func (r Record) String() string {
	return fmt.Sprintf("%q by %q", deref(r.Title), deref(r.Artist))
}

// Provider is the interface that catalog search services must implement.
// Search returns the track candidates for rec; an empty result with a nil
// error means the catalog had nothing usable.
type Provider interface {
	Name() string
	Search(ctx context.Context, rec Record) ([]Record, error)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
