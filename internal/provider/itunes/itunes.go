package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"imd/internal/logger"
	"imd/internal/metadata"
)

const (
	defaultAPIURL  = "https://itunes.apple.com/search"
	defaultTimeout = 10 * time.Second
	trackWrapper   = "track"
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	APIURL    string
	Timeout   time.Duration
	UserAgent string
}

// Client is an iTunes Search API client that implements metadata.Provider.
type Client struct {
	httpClient *http.Client
	apiURL     string
	userAgent  string
	logger     *logger.Logger
}

// New creates a new iTunes client.
func New(log *logger.Logger, opts Options) *Client {
	if opts.APIURL == "" {
		opts.APIURL = defaultAPIURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "imd/dev"
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		apiURL:     opts.APIURL,
		userAgent:  opts.UserAgent,
		logger:     log,
	}
}

func (c *Client) Name() string { return "itunes" }

// Search queries the iTunes Search API and returns the track results as
// records. Non-track results and results with a malformed release date
// are skipped.
func (c *Client) Search(ctx context.Context, rec metadata.Record) ([]metadata.Record, error) {
	term, err := BuildTerm(rec)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s?term=%s", c.apiURL, encodeTerm(term))
	c.logger.Debug("iTunes search URL: %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create itunes request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("itunes search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("itunes search returned %d: %s", resp.StatusCode, body)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode itunes response: %w", err)
	}

	c.logger.Debug("iTunes returned %d results", searchResp.ResultCount)
	return c.parseResults(searchResp.Results), nil
}

// BuildTerm joins title and artist into a search term.
func BuildTerm(rec metadata.Record) (string, error) {
	if err := metadata.RequireTitleArtist(rec); err != nil {
		return "", err
	}
	return *rec.Title + "+" + *rec.Artist, nil
}

// encodeTerm escapes each "+"-separated part of term and keeps the
// separators, which iTunes reads as spaces.
func encodeTerm(term string) string {
	parts := strings.Split(term, "+")
	for i, p := range parts {
		parts[i] = url.QueryEscape(p)
	}
	return strings.Join(parts, "+")
}

func (c *Client) parseResults(items []resultItem) []metadata.Record {
	var results []metadata.Record
	for _, item := range items {
		rec, ok, err := mapItem(item)
		if err != nil {
			c.logger.Warn("Skipping %q by %q: %v", deref(item.TrackName), deref(item.ArtistName), err)
			continue
		}
		if ok {
			results = append(results, rec)
		}
	}
	return results
}

// mapItem converts a search result to a record. ok is false for results
// that are not individual tracks, such as albums or artists.
func mapItem(item resultItem) (metadata.Record, bool, error) {
	if item.WrapperType == nil || *item.WrapperType != trackWrapper {
		return metadata.Record{}, false, nil
	}

	rec := metadata.Record{
		Title:       item.TrackName,
		Artist:      item.ArtistName,
		Album:       item.CollectionName,
		Genre:       item.PrimaryGenreName,
		TrackNumber: item.TrackNumber,
		DiscNumber:  item.DiscNumber,
		TotalTracks: item.TrackCount,
		TotalDiscs:  item.DiscCount,
	}

	if item.TrackTimeMillis != nil {
		rec.Duration = metadata.Ptr(time.Duration(*item.TrackTimeMillis) * time.Millisecond)
	}

	if item.ReleaseDate != nil {
		year, err := releaseYear(*item.ReleaseDate)
		if err != nil {
			return metadata.Record{}, false, err
		}
		rec.Year = metadata.Ptr(year)
	}

	return rec, true, nil
}

// releaseYear extracts the year from an RFC 3339 release date such as
// "2020-03-20T07:00:00Z".
func releaseYear(date string) (uint16, error) {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return 0, &metadata.DateParseError{Value: date, Err: err}
	}
	return uint16(t.Year()), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// iTunes Search API response types

type searchResponse struct {
	ResultCount int          `json:"resultCount"`
	Results     []resultItem `json:"results"`
}

type resultItem struct {
	WrapperType            *string  `json:"wrapperType"`
	Kind                   *string  `json:"kind"`
	ArtistID               *int64   `json:"artistId"`
	CollectionID           *int64   `json:"collectionId"`
	TrackID                *int64   `json:"trackId"`
	ArtistName             *string  `json:"artistName"`
	CollectionName         *string  `json:"collectionName"`
	TrackName              *string  `json:"trackName"`
	CollectionCensoredName *string  `json:"collectionCensoredName"`
	TrackCensoredName      *string  `json:"trackCensoredName"`
	ArtistViewURL          *string  `json:"artistViewUrl"`
	CollectionViewURL      *string  `json:"collectionViewUrl"`
	TrackViewURL           *string  `json:"trackViewUrl"`
	PreviewURL             *string  `json:"previewUrl"`
	ArtworkURL30           *string  `json:"artworkUrl30"`
	ArtworkURL60           *string  `json:"artworkUrl60"`
	ArtworkURL100          *string  `json:"artworkUrl100"`
	CollectionPrice        *float64 `json:"collectionPrice"`
	TrackPrice             *float64 `json:"trackPrice"`
	ReleaseDate            *string  `json:"releaseDate"`
	CollectionExplicitness *string  `json:"collectionExplicitness"`
	TrackExplicitness      *string  `json:"trackExplicitness"`
	DiscCount              *uint16  `json:"discCount"`
	DiscNumber             *uint16  `json:"discNumber"`
	TrackCount             *uint16  `json:"trackCount"`
	TrackNumber            *uint16  `json:"trackNumber"`
	TrackTimeMillis        *int64   `json:"trackTimeMillis"`
	Country                *string  `json:"country"`
	Currency               *string  `json:"currency"`
	PrimaryGenreName       *string  `json:"primaryGenreName"`
	IsStreamable           *bool    `json:"isStreamable"`
}
