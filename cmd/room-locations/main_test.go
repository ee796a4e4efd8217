package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRunConvertsWorkbook(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "RoomLocation.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ROOMID", "BUILDING", "FLOOR"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"LT1", "Lecture Complex", "Ground"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{204, "Main Block", "Second"}))
	require.NoError(t, f.SaveAs(workbook))
	require.NoError(t, f.Close())

	output := filepath.Join(dir, "room_lookup.json")
	count, err := run(workbook, output)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var lookup map[string]string
	require.NoError(t, json.Unmarshal(data, &lookup))
	assert.Equal(t, map[string]string{
		"LT1": "Lecture Complex (Ground)",
		"204": "Main Block (Second)",
	}, lookup)
}
