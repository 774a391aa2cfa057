package metadata

import (
	"context"
	"fmt"

	"imd/internal/logger"
)

// RequireTitleArtist returns a *MissingFieldError when rec cannot be searched for.
func RequireTitleArtist(rec Record) error {
	if rec.Title == nil {
		return &MissingFieldError{Field: "title"}
	}
	if rec.Artist == nil {
		return &MissingFieldError{Field: "artist"}
	}
	return nil
}

// Retrieve searches p for candidates matching rec. When a search comes back
// empty, title and artist are simplified and the search is repeated, until
// either something is found or simplification no longer changes anything.
// Transport errors are returned as-is and never retried.
func Retrieve(ctx context.Context, p Provider, rec Record, log *logger.Logger) ([]Record, error) {
	if err := RequireTitleArtist(rec); err != nil {
		return nil, err
	}

	query := rec
	for attempt := 1; ; attempt++ {
		log.Debug("Searching %s (attempt %d): %s", p.Name(), attempt, query)

		candidates, err := p.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("%s search failed: %w", p.Name(), err)
		}
		if len(candidates) > 0 {
			log.Info("Found %d candidates", len(candidates))
			return candidates, nil
		}

		simplified, changed := simplifyRecord(query)
		if !changed {
			return nil, fmt.Errorf("%w for %s", ErrNoMatch, query)
		}

		log.Info("No results found, trying again with simplified search terms")
		query = simplified
	}
}
