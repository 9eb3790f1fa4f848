// Package archive bundles rendered documents into zip files.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrNoEntries indicates an archive was requested with nothing to pack.
var ErrNoEntries = errors.New("no entries to archive")

// Entry is one file to include in an archive.
type Entry struct {
	Name string
	Data []byte
}

// Build writes entries into w as a deflate-compressed zip archive.
// Entry order is preserved.
func Build(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}

	zw := zip.NewWriter(w)
	for _, e := range entries {
		f, err := zw.Create(e.Name)
		if err != nil {
			return fmt.Errorf("creating archive entry %q: %w", e.Name, err)
		}
		if _, err := f.Write(e.Data); err != nil {
			return fmt.Errorf("writing archive entry %q: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// TimestampedName returns "<prefix>_<yyyymmdd_hhmmss>.zip" for the given
// moment in local time.
func TimestampedName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.zip", prefix, now.Format("20060102_150405"))
}
