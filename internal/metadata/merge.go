package metadata

// Merge combines the original record with the selected catalog match.
//
// Most fields prefer best and fall back to original. Composer and Comment
// come from best only: an original value is dropped when best has none.
// Duration always comes from original.
func Merge(original, best Record) Record {
	return Record{
		Title:         or(best.Title, original.Title),
		Artist:        or(best.Artist, original.Artist),
		Album:         or(best.Album, original.Album),
		AlbumArtist:   or(best.AlbumArtist, original.AlbumArtist),
		Composer:      best.Composer,
		Genre:         or(best.Genre, original.Genre),
		TrackNumber:   or(best.TrackNumber, original.TrackNumber),
		DiscNumber:    or(best.DiscNumber, original.DiscNumber),
		Year:          or(best.Year, original.Year),
		Comment:       best.Comment,
		Duration:      original.Duration,
		TotalTracks:   or(best.TotalTracks, original.TotalTracks),
		TotalDiscs:    or(best.TotalDiscs, original.TotalDiscs),
		IsCompilation: or(best.IsCompilation, original.IsCompilation),
	}
}

func or[T any](preferred, fallback *T) *T {
	if preferred != nil {
		return preferred
	}
	return fallback
}
