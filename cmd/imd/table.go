package main

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"imd/internal/metadata"
)

// renderTable draws a rounded table. Column numbers listed in right
// (1-based) are right aligned; headers always align left.
func renderTable(header table.Row, rows []table.Row, right ...int) string {
	if len(header) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	tw.AppendRows(rows)

	configs := make([]table.ColumnConfig, 0, len(right))
	for _, n := range right {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// renderMatches lists the highest scored candidates, best first.
func renderMatches(top []metadata.Scored) string {
	rows := make([]table.Row, 0, len(top))
	for i, s := range top {
		rows = append(rows, table.Row{
			i + 1,
			strconv.FormatFloat(s.Score, 'f', 3, 64),
			formatText(s.Record.Title),
			formatText(s.Record.Artist),
			formatText(s.Record.Album),
			formatNumber(s.Record.Year),
			formatDuration(s.Record.Duration),
		})
	}
	header := table.Row{"#", "Score", "Title", "Artist", "Album", "Year", "Duration"}
	return renderTable(header, rows, 1, 2, 6, 7)
}

// renderRecord shows the original and the fixed value of every field.
func renderRecord(original, final metadata.Record) string {
	fields := []struct {
		name   string
		format func(metadata.Record) string
	}{
		{"Title", func(r metadata.Record) string { return formatText(r.Title) }},
		{"Artist", func(r metadata.Record) string { return formatText(r.Artist) }},
		{"Album", func(r metadata.Record) string { return formatText(r.Album) }},
		{"Album Artist", func(r metadata.Record) string { return formatText(r.AlbumArtist) }},
		{"Composer", func(r metadata.Record) string { return formatText(r.Composer) }},
		{"Genre", func(r metadata.Record) string { return formatText(r.Genre) }},
		{"Track Number", func(r metadata.Record) string { return formatNumber(r.TrackNumber) }},
		{"Disc Number", func(r metadata.Record) string { return formatNumber(r.DiscNumber) }},
		{"Year", func(r metadata.Record) string { return formatNumber(r.Year) }},
		{"Comment", func(r metadata.Record) string { return formatText(r.Comment) }},
		{"Duration", func(r metadata.Record) string { return formatDuration(r.Duration) }},
		{"Total Tracks", func(r metadata.Record) string { return formatNumber(r.TotalTracks) }},
		{"Total Discs", func(r metadata.Record) string { return formatNumber(r.TotalDiscs) }},
		{"Is Compilation", func(r metadata.Record) string { return formatBool(r.IsCompilation) }},
	}

	rows := make([]table.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, table.Row{f.name, f.format(original), f.format(final)})
	}
	return renderTable(table.Row{"Field", "Original", "Fixed"}, rows)
}

func formatText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatNumber(v *uint16) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}

func formatDuration(v *time.Duration) string {
	if v == nil {
		return ""
	}
	return v.Round(time.Second).String()
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
