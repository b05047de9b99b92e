package spotwx

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gagreene/spotwx/internal/models"
)

// CSVHeader is the fixed seven-column header; there is no index column.
var CSVHeader = []string{"HOURLY", "HOUR", "TEMP", "RH", "WD", "WS", "PRECIP"}

// WriteCSV writes rows to path as comma-separated UTF-8 text, creating or
// truncating the file. An empty row slice still produces the header.
func WriteCSV(path string, rows []models.ForecastRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Fields()); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	return nil
}
