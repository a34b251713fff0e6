package donation

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// WriteCSV writes one CSV file per table into dir, named <table>.csv. The
// header row lists the table's columns; cells for columns a row does not
// carry are left empty.
func WriteCSV(dir string, tables map[string]*Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	for _, table := range sortedTables(tables) {
		if err := writeTableCSV(dir, table); err != nil {
			return err
		}
	}
	return nil
}

func writeTableCSV(dir string, table *Table) error {
	f, err := os.Create(filepath.Join(dir, table.Name+".csv"))
	if err != nil {
		return fmt.Errorf("failed to create csv for table %q: %w", table.Name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write csv header for table %q: %w", table.Name, err)
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			record[i] = formatCell(row[col])
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for table %q: %w", table.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv for table %q: %w", table.Name, err)
	}
	return f.Close()
}

// WriteSQLite writes every table into a SQLite database at path, one TEXT
// column per table column. An existing database file is replaced.
func WriteSQLite(path string, tables map[string]*Table) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove stale database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database %q: %w", path, err)
	}
	defer db.Close()

	for _, table := range sortedTables(tables) {
		if err := writeTableSQLite(db, table); err != nil {
			return err
		}
	}
	return nil
}

func writeTableSQLite(db *sql.DB, table *Table) error {
	cols := make([]string, len(table.Columns))
	holes := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cols[i] = quoteIdent(col) + " TEXT"
		holes[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)",
		quoteIdent(table.Name), strings.Join(cols, ", "))
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("failed to create table %q: %w", table.Name, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for table %q: %w", table.Name, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)",
		quoteIdent(table.Name), strings.Join(holes, ", ")))
	if err != nil {
		return fmt.Errorf("failed to prepare insert for table %q: %w", table.Name, err)
	}
	defer stmt.Close()

	args := make([]any, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			args[i] = formatCell(row[col])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert into table %q: %w", table.Name, err)
		}
	}
	return tx.Commit()
}

// formatCell renders a decoded JSON value as a flat string cell.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// JSON numbers decode as float64; keep integers clean
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func sortedTables(tables map[string]*Table) []*Table {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Table, len(names))
	for i, name := range names {
		out[i] = tables[name]
	}
	return out
}
