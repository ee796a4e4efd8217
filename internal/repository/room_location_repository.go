package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/pkg/storage"
)

// Workbook column headers expected in the room location sheet.
const (
	headerRoomID   = "ROOMID"
	headerBuilding = "BUILDING"
	headerFloor    = "FLOOR"
)

// RoomLocationRepository serves the room -> "BUILDING (FLOOR)" lookup table.
// The table is read from a JSON cache, or imported from the workbook (and the
// cache written) when the JSON file does not exist yet.
type RoomLocationRepository struct {
	jsonPath     string
	workbookPath string
	logger       *zap.Logger
	lookup       map[string]string
}

// NewRoomLocationRepository constructs a RoomLocationRepository.
func NewRoomLocationRepository(jsonPath, workbookPath string, logger *zap.Logger) *RoomLocationRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomLocationRepository{jsonPath: jsonPath, workbookPath: workbookPath, logger: logger}
}

// Load populates the lookup table.
func (r *RoomLocationRepository) Load(ctx context.Context) error {
	store, err := storage.NewLocalStorage(filepath.Dir(r.jsonPath))
	if err != nil {
		return err
	}
	name := filepath.Base(r.jsonPath)

	if store.Exists(name) {
		data, err := store.Read(name)
		if err != nil {
			return fmt.Errorf("read room lookup %s: %w", r.jsonPath, err)
		}
		lookup := make(map[string]string)
		if err := json.Unmarshal(data, &lookup); err != nil {
			return fmt.Errorf("decode room lookup %s: %w", r.jsonPath, err)
		}
		r.lookup = lookup
		return nil
	}

	r.logger.Info("room lookup cache missing, importing workbook", zap.String("workbook", r.workbookPath))
	locations, err := ReadRoomWorkbook(r.workbookPath)
	if err != nil {
		return err
	}
	lookup := BuildRoomLookup(locations)
	payload, err := EncodeRoomLookup(lookup)
	if err != nil {
		return err
	}
	if _, err := store.Save(name, payload); err != nil {
		return fmt.Errorf("write room lookup %s: %w", r.jsonPath, err)
	}
	r.lookup = lookup
	return nil
}

// Loaded reports whether Load has succeeded.
func (r *RoomLocationRepository) Loaded() bool {
	return r.lookup != nil
}

// Find returns the location label for each known id; unknown ids are omitted.
func (r *RoomLocationRepository) Find(ctx context.Context, roomIDs []string) (map[string]string, error) {
	found := make(map[string]string, len(roomIDs))
	for _, id := range roomIDs {
		if label, ok := r.lookup[id]; ok {
			found[id] = label
		}
	}
	return found, nil
}

// ReadRoomWorkbook reads the active sheet of a room location workbook. The
// first row must contain the ROOMID, BUILDING and FLOOR headers.
func ReadRoomWorkbook(path string) ([]models.RoomLocation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}

	columns := make(map[string]int, len(rows[0]))
	for idx, header := range rows[0] {
		columns[strings.TrimSpace(header)] = idx
	}
	for _, required := range []string{headerRoomID, headerBuilding, headerFloor} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("workbook %s missing %s column", path, required)
		}
	}

	cell := func(row []string, header string) string {
		idx := columns[header]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	locations := make([]models.RoomLocation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := cell(row, headerRoomID)
		if id == "" {
			continue
		}
		locations = append(locations, models.RoomLocation{
			RoomID:   id,
			Building: cell(row, headerBuilding),
			Floor:    cell(row, headerFloor),
		})
	}
	return locations, nil
}

// BuildRoomLookup indexes locations by room id; later rows win.
func BuildRoomLookup(locations []models.RoomLocation) map[string]string {
	lookup := make(map[string]string, len(locations))
	for _, loc := range locations {
		lookup[loc.RoomID] = loc.Label()
	}
	return lookup
}

// EncodeRoomLookup renders the lookup table as indented JSON.
func EncodeRoomLookup(lookup map[string]string) ([]byte, error) {
	payload, err := json.MarshalIndent(lookup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode room lookup: %w", err)
	}
	return payload, nil
}
