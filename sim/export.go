package sim

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

// WriteCSV serializes each sector's time series to <dir>/<sector>.csv, one
// row per year, the year column first and indicator columns in declared
// order. The directory is created if needed.
func WriteCSV(results Results, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	for _, sector := range SectorOrder {
		table, ok := results[sector]
		if !ok || table == nil {
			continue
		}
		path := filepath.Join(dir, sector+".csv")
		if err := writeTableCSV(table, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logrus.Debugf("wrote %s (%d rows)", path, table.Len())
	}
	return nil
}

func writeTableCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"year"}, t.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, year := range t.Years {
		row[0] = strconv.Itoa(year)
		for j, col := range t.Columns {
			row[j+1] = strconv.FormatFloat(t.Column(col)[i], 'f', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
