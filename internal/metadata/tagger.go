package metadata

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"imd/pkg/utils"

	"go.senan.xyz/taglib"
)

// Tag keys without a taglib constant.
const (
	tagTrackTotal = "TRACKTOTAL"
	tagDiscTotal  = "DISCTOTAL"
)

// ReadTags reads the tags and duration of an audio file.
func ReadTags(path string) (Record, error) {
	if err := utils.CheckAudioFile(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Record{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	tags, err := taglib.ReadTags(path)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if len(tags) == 0 {
		return Record{}, fmt.Errorf("%w in %s", ErrNoTags, path)
	}

	props, err := taglib.ReadProperties(path)
	if err != nil {
		return Record{}, fmt.Errorf("%w: failed to read audio properties of %s: %v", ErrUnreadable, path, err)
	}

	return FromTags(tags, props.Length), nil
}

// WriteTags writes every present field of rec to an audio file, leaving
// other tags untouched.
func WriteTags(path string, rec Record) error {
	if err := taglib.WriteTags(path, ToTags(rec), 0); err != nil {
		return fmt.Errorf("%w to %s: %v", ErrWriteFailed, path, err)
	}
	return nil
}

// FromTags maps a raw tag map to a Record. The duration comes from the
// audio properties, never from a tag.
func FromTags(tags map[string][]string, duration time.Duration) Record {
	rec := Record{
		Title:       textTag(tags, taglib.Title),
		Artist:      textTag(tags, taglib.Artist),
		Album:       textTag(tags, taglib.Album),
		AlbumArtist: textTag(tags, taglib.AlbumArtist),
		Composer:    textTag(tags, taglib.Composer),
		Genre:       textTag(tags, taglib.Genre),
		Year:        yearTag(tags),
		Comment:     textTag(tags, taglib.Comment),
		Duration:    Ptr(duration),
		TotalTracks: numberTag(tags, tagTrackTotal),
		TotalDiscs:  numberTag(tags, tagDiscTotal),
	}

	// "3/12" style positions carry the total when no dedicated tag exists.
	rec.TrackNumber, rec.TotalTracks = positionTag(tags, taglib.TrackNumber, rec.TotalTracks)
	rec.DiscNumber, rec.TotalDiscs = positionTag(tags, taglib.DiscNumber, rec.TotalDiscs)

	if v := textTag(tags, taglib.Compilation); v != nil {
		rec.IsCompilation = Ptr(*v == "1")
	}

	return rec
}

// ToTags maps a Record to a raw tag map, one key per present field.
func ToTags(rec Record) map[string][]string {
	tags := make(map[string][]string)

	setText := func(key string, v *string) {
		if v != nil {
			tags[key] = []string{*v}
		}
	}
	setNumber := func(key string, v *uint16) {
		if v != nil {
			tags[key] = []string{strconv.Itoa(int(*v))}
		}
	}

	setText(taglib.Title, rec.Title)
	setText(taglib.Artist, rec.Artist)
	setText(taglib.Album, rec.Album)
	setText(taglib.AlbumArtist, rec.AlbumArtist)
	setText(taglib.Composer, rec.Composer)
	setText(taglib.Genre, rec.Genre)
	setNumber(taglib.TrackNumber, rec.TrackNumber)
	setNumber(taglib.DiscNumber, rec.DiscNumber)
	setNumber(taglib.Date, rec.Year)
	setText(taglib.Comment, rec.Comment)
	setNumber(tagTrackTotal, rec.TotalTracks)
	setNumber(tagDiscTotal, rec.TotalDiscs)

	if rec.IsCompilation != nil {
		v := "0"
		if *rec.IsCompilation {
			v = "1"
		}
		tags[taglib.Compilation] = []string{v}
	}

	return tags
}

func textTag(tags map[string][]string, key string) *string {
	if vals, ok := tags[key]; ok && len(vals) > 0 {
		return Ptr(vals[0])
	}
	return nil
}

func numberTag(tags map[string][]string, key string) *uint16 {
	v := textTag(tags, key)
	if v == nil {
		return nil
	}
	return parseUint16(*v)
}

func positionTag(tags map[string][]string, key string, total *uint16) (*uint16, *uint16) {
	v := textTag(tags, key)
	if v == nil {
		return nil, total
	}

	num, tot, found := strings.Cut(*v, "/")
	if found && total == nil {
		total = parseUint16(tot)
	}
	return parseUint16(num), total
}

// yearTag accepts "2020" as well as full dates such as "2020-03-20".
func yearTag(tags map[string][]string) *uint16 {
	v := textTag(tags, taglib.Date)
	if v == nil || len(*v) < 4 {
		return nil
	}
	return parseUint16((*v)[:4])
}

func parseUint16(s string) *uint16 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return nil
	}
	return Ptr(uint16(n))
}
