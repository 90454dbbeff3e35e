package history

import (
	"encoding/json"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ExportJSONL writes the log as line-delimited JSON, one entry per line.
func (l *Log) ExportJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, e := range l.All() {
		if err := enc.Encode(e); err != nil {
			return errors.Wrapf(err, "encoding history entry %s", e.ID)
		}
	}
	return nil
}

// ExportJSONLGzip writes the gzip-compressed JSONL form of the log.
func (l *Log) ExportJSONLGzip(w io.Writer) error {
	zw := gzip.NewWriter(w)
	if err := l.ExportJSONL(zw); err != nil {
		zw.Close()
		return err
	}
	return errors.Wrap(zw.Close(), "flushing gzip stream")
}

// parquetEntry is the flattened row schema of the Parquet export.
type parquetEntry struct {
	ID               string  `parquet:"id"`
	TimestampMillis  int64   `parquet:"timestamp_ms"`
	Original         string  `parquet:"original"`
	Encoded          string  `parquet:"encoded"`
	Format           string  `parquet:"format"`
	SyllableCount    int32   `parquet:"syllable_count"`
	MappedCount      int32   `parquet:"mapped_count"`
	CompressionRatio float64 `parquet:"compression_ratio"`
}

// ExportParquet writes the log as one Parquet row group.
func (l *Log) ExportParquet(w io.Writer) error {
	entries := l.All()
	rows := make([]parquetEntry, len(entries))
	for i, e := range entries {
		rows[i] = parquetEntry{
			ID:               e.ID,
			TimestampMillis:  e.Timestamp.UnixMilli(),
			Original:         e.Original,
			Encoded:          e.Encoded,
			Format:           e.Format,
			SyllableCount:    int32(e.SyllableCount),
			MappedCount:      int32(e.MappedCount),
			CompressionRatio: e.CompressionRatio,
		}
	}
	pw := parquet.NewGenericWriter[parquetEntry](w)
	if len(rows) > 0 {
		if _, err := pw.Write(rows); err != nil {
			pw.Close()
			return errors.Wrap(err, "writing parquet rows")
		}
	}
	return errors.Wrap(pw.Close(), "closing parquet writer")
}

// SaveFile writes the full log to path as an indented JSON array. A sibling
// ".lock" file coordinates concurrent processes writing the same path; the
// JSON is written to a temporary file first and renamed into place. The lock
// file is left behind: saves are repeatable, and unlinking it would let a
// waiter still polling the old inode acquire a lock nobody else sees.
func (l *Log) SaveFile(path string) error {
	data, err := json.MarshalIndent(l.All(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling history")
	}
	lockPath := path + ".lock"
	err = withFileLock(lockPath, func() error {
		tmpPath := path + ".tmp"
		if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing temporary history file %q", tmpPath)
		}
		if err := os.Rename(tmpPath, path); err != nil {
			return errors.Wrapf(err, "moving history file into place at %q", path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	klog.V(1).Infof("saved %d history entries to %s", l.Len(), path)
	return nil
}

// withFileLock opens (or creates) lockPath, locks it, and runs fn. If the
// lock is held elsewhere it polls with a randomized 1-2 second period until
// acquired.
func withFileLock(lockPath string, fn func() error) (err error) {
	fileLock := flock.New(lockPath)
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return errors.Wrapf(err, "while trying to lock %q", lockPath)
		}
		if locked {
			break
		}
		time.Sleep(time.Millisecond * time.Duration(1000+rand.Intn(1000)))
	}
	defer func() {
		if unlockErr := fileLock.Unlock(); unlockErr != nil && err == nil {
			err = errors.Wrapf(unlockErr, "unlocking file %q", lockPath)
		}
	}()
	return fn()
}
