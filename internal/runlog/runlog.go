// Package runlog keeps an append-only journal of solver runs as
// zstd-compressed JSONL. Each session appends one zstd frame; frames
// concatenate, so a reopened journal stays decodable end to end.
package runlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

const journalFile = "runs.jsonl.zst"

// Record is one journal entry. The model text itself lives in the run
// store; the journal carries the timing trail.
type Record struct {
	Width     int       `json:"w"`
	Height    int       `json:"h"`
	Depth     int       `json:"d"`
	Source    string    `json:"source"`
	StartedAt time.Time `json:"started_at"`
	Duration  int64     `json:"duration_ms"`
	Atoms     int       `json:"atoms"`
}

// Journal appends records to <dir>/runs.jsonl.zst.
type Journal struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Open creates dir if needed and opens the journal for appending.
func Open(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("runlog: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, journalFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("runlog: %w", err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("runlog: %w", err)
	}
	return &Journal{f: f, enc: enc, w: bufio.NewWriter(enc)}, nil
}

// Append writes one record.
func (j *Journal) Append(rec Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("runlog: %w", err)
	}
	if _, err := j.w.Write(b); err != nil {
		return fmt.Errorf("runlog: %w", err)
	}
	if err := j.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("runlog: %w", err)
	}
	return nil
}

// Close flushes and closes the journal. The zstd frame is only complete
// after Close.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.w.Flush(); err != nil {
		return fmt.Errorf("runlog: %w", err)
	}
	if err := j.enc.Close(); err != nil {
		return fmt.Errorf("runlog: %w", err)
	}
	return j.f.Close()
}

// ReadAll decodes every record in the journal under dir. A missing
// journal yields no records and no error.
func ReadAll(dir string) ([]Record, error) {
	f, err := os.Open(filepath.Join(dir, journalFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("runlog: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("runlog: %w", err)
	}
	defer dec.Close()

	var recs []Record
	scanner := bufio.NewScanner(dec)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("runlog: bad record: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("runlog: %w", err)
	}
	return recs, nil
}
