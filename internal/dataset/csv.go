package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// loadCSV reads a comma-separated file. Rows may have varying field counts.
func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- caller-supplied dataset path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetRead, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetRead, err)
	}

	return fromRows(rows, path)
}
