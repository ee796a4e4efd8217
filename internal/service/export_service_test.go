package service

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/pkg/storage"
)

func sampleCompactTable() *models.CompactTable {
	return &models.CompactTable{
		Meta: models.CompactMeta{GeneratedAt: "2024-03-04T09:34:05Z", SourceCacheVersions: []string{"v1"}},
		Campuses: map[string]models.CampusRooms{
			"mca": {Rooms: map[string]map[string][]models.BusyPair{
				"M1": {"Monday": {{"09:00 AM", "10:00 AM"}}},
			}},
			"btech-1": {Rooms: map[string]map[string][]models.BusyPair{
				"LT1": {
					"Tuesday": {{"01:00 PM", "02:00 PM"}},
					"Monday":  {{"09:00 AM", "10:00 AM"}, {"11:00 AM", "12:00 PM"}},
				},
			}},
		},
	}
}

func TestBusyRowsOrdering(t *testing.T) {
	rows := BusyRows(sampleCompactTable())

	assert.Equal(t, []string{"Campus", "Room", "Day", "Start", "End"}, rows.Headers)
	assert.Equal(t, [][]string{
		{"btech-1", "LT1", "Monday", "09:00 AM", "10:00 AM"},
		{"btech-1", "LT1", "Monday", "11:00 AM", "12:00 PM"},
		{"btech-1", "LT1", "Tuesday", "01:00 PM", "02:00 PM"},
		{"mca", "M1", "Monday", "09:00 AM", "10:00 AM"},
	}, rows.Rows)
}

func TestExportServiceCSV(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewExportService(store, zap.NewNop(), nil, nil)

	path, err := svc.Export(context.Background(), sampleCompactTable(), ExportFormatCSV, "busy.csv")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("Campus,Room,Day,Start,End\n")))
	assert.Contains(t, string(data), "mca,M1,Monday,09:00 AM,10:00 AM")
}

func TestExportServicePDF(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewExportService(store, zap.NewNop(), nil, nil)

	path, err := svc.Export(context.Background(), sampleCompactTable(), ExportFormatPDF, "busy.pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewExportService(store, zap.NewNop(), nil, nil)

	_, err = svc.Export(context.Background(), sampleCompactTable(), ExportFormat("xlsx"), "busy.xlsx")
	require.Error(t, err)
}
