package main

// Notes:
// - Discovery operates on real temp directories; symlink and permission edge
//   cases are platform-dependent and not covered here.
// These are acceptable gaps: we test observable behavior, not implementation
// details.

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	lawlabel "github.com/alnah/go-lawlabel"
)

// ---------------------------------------------------------------------------
// TestDiscoverDatasets - file and directory inputs
// ---------------------------------------------------------------------------

func TestDiscoverDatasets(t *testing.T) {
	t.Parallel()

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"orders.csv": csvHeader})
		path := filepath.Join(dir, "orders.csv")

		got, err := discoverDatasets(path)
		if err != nil {
			t.Fatalf("discoverDatasets() unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != path {
			t.Errorf("discoverDatasets() = %v, want [%s]", got, path)
		}
	})

	t.Run("directory collects supported files", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{
			"a.csv":       csvHeader,
			"b.xlsx":      "stub",
			"c.xlsm":      "stub",
			"d.XLSX":      "stub",
			"notes.txt":   "ignore",
			"sub/e.csv":   csvHeader,
			"sub/f.pdf":   "ignore",
			"sub/g.CSV":   csvHeader,
			".hidden.csv": csvHeader,
		})

		got, err := discoverDatasets(dir)
		if err != nil {
			t.Fatalf("discoverDatasets() unexpected error: %v", err)
		}

		stems := make([]string, len(got))
		for i, p := range got {
			rel, err := filepath.Rel(dir, p)
			if err != nil {
				t.Fatalf("Rel failed: %v", err)
			}
			stems[i] = rel
		}
		sort.Strings(stems)

		want := []string{
			".hidden.csv",
			"a.csv",
			"b.xlsx",
			"c.xlsm",
			"d.XLSX",
			filepath.Join("sub", "e.csv"),
			filepath.Join("sub", "g.CSV"),
		}
		if len(stems) != len(want) {
			t.Fatalf("discoverDatasets() found %v, want %v", stems, want)
		}
		for i := range want {
			if stems[i] != want[i] {
				t.Errorf("dataset %d = %q, want %q", i, stems[i], want[i])
			}
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		got, err := discoverDatasets(t.TempDir())
		if err != nil {
			t.Fatalf("discoverDatasets() unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("discoverDatasets() = %v, want none", got)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverDatasets(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("discoverDatasets() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("unsupported file extension", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"orders.txt": "stub"})

		_, err := discoverDatasets(filepath.Join(dir, "orders.txt"))
		if !errors.Is(err, ErrInvalidExtension) {
			t.Fatalf("discoverDatasets() error = %v, want ErrInvalidExtension", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDatasetStem - output directory naming
// ---------------------------------------------------------------------------

func TestDatasetStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"orders.xlsx", "orders"},
		{"orders.csv", "orders"},
		{"/data/in/orders.xlsm", "orders"},
		{"archive.2024.csv", "archive.2024"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := datasetStem(tt.path); got != tt.want {
				t.Errorf("datasetStem(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateDatasetExtension - extension gate for explicit files
// ---------------------------------------------------------------------------

func TestValidateDatasetExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"orders.xlsx", false},
		{"orders.xlsm", false},
		{"orders.csv", false},
		{"orders.XLSX", false},
		{"orders.txt", true},
		{"orders.pdf", true},
		{"orders", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			err := validateDatasetExtension(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidExtension) {
					t.Fatalf("validateDatasetExtension(%q) error = %v, want ErrInvalidExtension", tt.path, err)
				}
				if !strings.Contains(err.Error(), "got") {
					t.Errorf("error %q missing extension detail", err)
				}
				return
			}
			if err != nil {
				t.Errorf("validateDatasetExtension(%q) unexpected error: %v", tt.path, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - worker flag bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		wantErr string
	}{
		{name: "auto", workers: 0},
		{name: "one", workers: 1},
		{name: "maximum", workers: lawlabel.MaxPoolSize},
		{name: "negative", workers: -1, wantErr: "must be >= 0"},
		{name: "above maximum", workers: lawlabel.MaxPoolSize + 1, wantErr: "maximum is"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateWorkers(tt.workers)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validateWorkers(%d) unexpected error: %v", tt.workers, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidWorkerCount) {
				t.Fatalf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.workers, err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q missing %q", err, tt.wantErr)
			}
		})
	}
}
