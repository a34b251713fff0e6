package donation

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() map[string]*Table {
	return map[string]*Table{
		"youtube_watch_history": {
			Name:    "youtube_watch_history",
			Columns: []string{"url", "id"},
			Rows: []Row{
				{"url": "x", "id": "001"},
				{"url": "y", "id": "002"},
			},
		},
		"tiktok_questionnaire": {
			Name:    "tiktok_questionnaire",
			Columns: []string{"answer", "id", "timestamp"},
			Rows: []Row{
				{"answer": float64(5), "id": "003", "timestamp": "1700000000"},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, exportFixture()))

	f, err := os.Open(filepath.Join(dir, "youtube_watch_history.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"url", "id"}, records[0])
	assert.Equal(t, []string{"x", "001"}, records[1])
	assert.Equal(t, []string{"y", "002"}, records[2])

	// Numbers render without a float suffix
	f2, err := os.Open(filepath.Join(dir, "tiktok_questionnaire.csv"))
	require.NoError(t, err)
	defer f2.Close()
	records, err = csv.NewReader(f2).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "003", "1700000000"}, records[1])
}

func TestWriteCSV_MissingCellsAreEmpty(t *testing.T) {
	dir := t.TempDir()
	tables := map[string]*Table{
		"sparse": {
			Name:    "sparse",
			Columns: []string{"a", "b"},
			Rows:    []Row{{"a": "1"}},
		},
	}
	require.NoError(t, WriteCSV(dir, tables))

	data, err := os.ReadFile(filepath.Join(dir, "sparse.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\n", string(data))
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sqlite")
	require.NoError(t, WriteSQLite(path, exportFixture()))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM youtube_watch_history`).Scan(&count))
	assert.Equal(t, 2, count)

	var answer, id string
	require.NoError(t, db.QueryRow(
		`SELECT answer, id FROM tiktok_questionnaire`).Scan(&answer, &id))
	assert.Equal(t, "5", answer)
	assert.Equal(t, "003", id)
}
