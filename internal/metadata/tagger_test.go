package metadata

import (
	"errors"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.senan.xyz/taglib"
)

// createTestAudioFile generates a minimal MP3 using ffmpeg.
// Skips the test if ffmpeg is not available.
func createTestAudioFile(t *testing.T, dir string) string {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available, skipping tagger test")
	}

	path := filepath.Join(dir, "test.mp3")
	cmd := exec.Command("ffmpeg", "-f", "lavfi", "-i", "anullsrc=r=44100:cl=mono", "-t", "1", "-q:a", "9", path)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to create test audio file: %v", err)
	}
	return path
}

func TestFromTags(t *testing.T) {
	tags := map[string][]string{
		taglib.Title:       {"Test Song"},
		taglib.Artist:      {"Test Artist"},
		taglib.Album:       {"Test Album"},
		taglib.AlbumArtist: {"Test Album Artist"},
		taglib.Composer:    {"Test Composer"},
		taglib.Genre:       {"Pop"},
		taglib.TrackNumber: {"3/12"},
		taglib.DiscNumber:  {"1"},
		tagDiscTotal:       {"2"},
		taglib.Date:        {"2023-05-01"},
		taglib.Comment:     {""},
		taglib.Compilation: {"1"},
	}

	got := FromTags(tags, 200*time.Second)
	want := Record{
		Title:         Ptr("Test Song"),
		Artist:        Ptr("Test Artist"),
		Album:         Ptr("Test Album"),
		AlbumArtist:   Ptr("Test Album Artist"),
		Composer:      Ptr("Test Composer"),
		Genre:         Ptr("Pop"),
		TrackNumber:   Ptr(uint16(3)),
		DiscNumber:    Ptr(uint16(1)),
		Year:          Ptr(uint16(2023)),
		Comment:       Ptr(""),
		Duration:      Ptr(200 * time.Second),
		TotalTracks:   Ptr(uint16(12)),
		TotalDiscs:    Ptr(uint16(2)),
		IsCompilation: Ptr(true),
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromTags() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestFromTagsAbsentAndInvalid(t *testing.T) {
	tags := map[string][]string{
		taglib.Title:       {"Only Title"},
		taglib.TrackNumber: {"A1"},
		taglib.Date:        {"99"},
		tagTrackTotal:      {"70000"},
	}

	got := FromTags(tags, time.Second)
	if got.Artist != nil || got.Album != nil || got.IsCompilation != nil {
		t.Errorf("absent fields should stay nil: %+v", got)
	}
	if got.TrackNumber != nil {
		t.Errorf("TrackNumber = %d, want absent", *got.TrackNumber)
	}
	if got.Year != nil {
		t.Errorf("Year = %d, want absent", *got.Year)
	}
	if got.TotalTracks != nil {
		t.Errorf("TotalTracks = %d, want absent for out of range value", *got.TotalTracks)
	}
}

func TestFromTagsDedicatedTotalWins(t *testing.T) {
	got := FromTags(map[string][]string{
		taglib.TrackNumber: {"3/12"},
		tagTrackTotal:      {"14"},
	}, 0)
	if *got.TotalTracks != 14 {
		t.Errorf("TotalTracks = %d, want 14", *got.TotalTracks)
	}
}

func TestToTags(t *testing.T) {
	rec := Record{
		Title:         Ptr("Test Song"),
		Artist:        Ptr("Test Artist"),
		TrackNumber:   Ptr(uint16(3)),
		Year:          Ptr(uint16(2023)),
		Duration:      Ptr(200 * time.Second),
		TotalTracks:   Ptr(uint16(12)),
		IsCompilation: Ptr(false),
	}

	want := map[string][]string{
		taglib.Title:       {"Test Song"},
		taglib.Artist:      {"Test Artist"},
		taglib.TrackNumber: {"3"},
		taglib.Date:        {"2023"},
		tagTrackTotal:      {"12"},
		taglib.Compilation: {"0"},
	}

	if got := ToTags(rec); !reflect.DeepEqual(got, want) {
		t.Errorf("ToTags() = %v, want %v", got, want)
	}
}

func TestToTagsEmptyRecord(t *testing.T) {
	if got := ToTags(Record{}); len(got) != 0 {
		t.Errorf("ToTags(Record{}) = %v, want empty", got)
	}
}

func TestReadTagsNonexistentFile(t *testing.T) {
	_, err := ReadTags("/nonexistent/file.mp3")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestReadTagsDirectory(t *testing.T) {
	_, err := ReadTags(t.TempDir())
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("expected ErrUnreadable, got %v", err)
	}
}

func TestWriteTagsNonexistentFile(t *testing.T) {
	err := WriteTags("/nonexistent/file.mp3", Record{Title: Ptr("x")})
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("expected ErrWriteFailed, got %v", err)
	}
}

func TestReadTagsNoTags(t *testing.T) {
	path := createTestAudioFile(t, t.TempDir())

	if err := taglib.WriteTags(path, nil, taglib.Clear); err != nil {
		t.Fatalf("failed to clear tags: %v", err)
	}

	_, err := ReadTags(path)
	if !errors.Is(err, ErrNoTags) {
		t.Errorf("expected ErrNoTags, got %v", err)
	}
}

func TestWriteAndReadTags(t *testing.T) {
	path := createTestAudioFile(t, t.TempDir())

	rec := Record{
		Title:       Ptr("Test Song"),
		Artist:      Ptr("Test Artist"),
		Album:       Ptr("Test Album"),
		AlbumArtist: Ptr("Test Album Artist"),
		Genre:       Ptr("Pop"),
		TrackNumber: Ptr(uint16(3)),
		DiscNumber:  Ptr(uint16(1)),
		Year:        Ptr(uint16(2023)),
	}

	if err := WriteTags(path, rec); err != nil {
		t.Fatalf("WriteTags failed: %v", err)
	}

	got, err := ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags failed: %v", err)
	}

	checks := map[string][2]*string{
		"title":        {rec.Title, got.Title},
		"artist":       {rec.Artist, got.Artist},
		"album":        {rec.Album, got.Album},
		"album artist": {rec.AlbumArtist, got.AlbumArtist},
		"genre":        {rec.Genre, got.Genre},
	}
	for name, pair := range checks {
		if pair[1] == nil || *pair[1] != *pair[0] {
			t.Errorf("%s = %v, want %q", name, pair[1], *pair[0])
		}
	}
	if got.TrackNumber == nil || *got.TrackNumber != 3 {
		t.Errorf("TrackNumber = %v, want 3", got.TrackNumber)
	}
	if got.Year == nil || *got.Year != 2023 {
		t.Errorf("Year = %v, want 2023", got.Year)
	}
	if got.Duration == nil || *got.Duration <= 0 {
		t.Errorf("Duration = %v, want the audio length", got.Duration)
	}
}
