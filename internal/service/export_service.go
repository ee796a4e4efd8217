package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/pkg/export"
)

// ExportFormat selects the rendering of a busy table export.
type ExportFormat string

const (
	// ExportFormatCSV renders one row per merged busy interval.
	ExportFormatCSV ExportFormat = "csv"
	// ExportFormatPDF renders the same rows as a printable document.
	ExportFormatPDF ExportFormat = "pdf"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
}

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(table export.Table, title, subtitle string) ([]byte, error)
}

var busyTableHeaders = []string{"Campus", "Room", "Day", "Start", "End"}

// ExportService renders compact busy tables and persists them.
type ExportService struct {
	storage fileStorage
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers fall back to the
// default exporters.
func NewExportService(storage fileStorage, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter(30, 60, 37, 75, 75)
	}
	return &ExportService{storage: storage, csv: csv, pdf: pdf, logger: logger}
}

// BusyRows flattens a compact table into sorted rows ordered by campus, room,
// weekday and then interval position.
func BusyRows(table *models.CompactTable) export.Table {
	out := export.Table{Headers: append([]string(nil), busyTableHeaders...)}
	if table == nil {
		return out
	}
	campuses := sortedKeys(table.Campuses)
	for _, campus := range campuses {
		rooms := table.Campuses[campus].Rooms
		for _, room := range sortedKeys(rooms) {
			days := rooms[room]
			for _, day := range orderedDays(days) {
				for _, pair := range days[day] {
					out.Rows = append(out.Rows, []string{campus, room, day, pair[0], pair[1]})
				}
			}
		}
	}
	return out
}

// Export renders table in the requested format and saves it as filename.
func (s *ExportService) Export(ctx context.Context, table *models.CompactTable, format ExportFormat, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rows := BusyRows(table)
	var (
		data []byte
		err  error
	)
	switch format {
	case ExportFormatCSV:
		data, err = s.csv.Render(rows)
	case ExportFormatPDF:
		subtitle := ""
		if table != nil {
			subtitle = fmt.Sprintf("Generated %s from %s", table.Meta.GeneratedAt, strings.Join(table.Meta.SourceCacheVersions, ", "))
		}
		data, err = s.pdf.Render(rows, "Room Occupancy", subtitle)
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("render %s: %w", format, err)
	}
	path, err := s.storage.Save(filename, data)
	if err != nil {
		return "", err
	}
	s.logger.Info("busy table exported",
		zap.String("format", string(format)),
		zap.String("path", path),
		zap.Int("rows", len(rows.Rows)),
	)
	return path, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// orderedDays lists weekdays first in calendar order, then any other day labels
// alphabetically.
func orderedDays(days map[string][]models.BusyPair) []string {
	ordered := make([]string, 0, len(days))
	seen := make(map[string]struct{}, len(days))
	for _, day := range models.Weekdays {
		if _, ok := days[day]; ok {
			ordered = append(ordered, day)
			seen[day] = struct{}{}
		}
	}
	rest := make([]string, 0)
	for day := range days {
		if _, ok := seen[day]; !ok {
			rest = append(rest, day)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
