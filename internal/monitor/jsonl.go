// internal/monitor/jsonl.go
package monitor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

/*
 * JSONL file sink.
 *
 * Appends events to daily UTC-dated files (<dir>/2006-01-02.jsonl), one JSON
 * object per line. Per-file mutexes protect concurrent appends to the same
 * daily file; the mutex map grows by ~1 entry per day, an acceptable
 * footprint for an annual lifecycle.
 *
 * The filename is chosen per Send call, so a batch spanning midnight lands
 * in the file of the moment the batch arrived.
 */

// JSONLSink appends events to daily JSONL files under a directory.
type JSONLSink struct {
	dir       string
	mutexLock sync.Mutex
	fileMutex map[string]*sync.Mutex
}

// NewJSONLSink creates the events directory if needed and returns a sink
// writing into it.
func NewJSONLSink(dir string) (*JSONLSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &JSONLSink{
		dir:       dir,
		fileMutex: make(map[string]*sync.Mutex),
	}, nil
}

// mutexFor returns the mutex for filename, creating it if not present.
func (s *JSONLSink) mutexFor(filename string) *sync.Mutex {
	s.mutexLock.Lock()
	defer s.mutexLock.Unlock()

	if _, ok := s.fileMutex[filename]; !ok {
		s.fileMutex[filename] = &sync.Mutex{}
	}
	return s.fileMutex[filename]
}

// Send implements Sink. All events in one call are written to the same
// daily file under the file's mutex.
func (s *JSONLSink) Send(events []Event) error {
	if len(events) == 0 {
		return nil
	}

	filename := filepath.Join(s.dir, time.Now().UTC().Format("2006-01-02")+".jsonl")
	mu := s.mutexFor(filename)

	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, event := range events {
		if err := encoder.Encode(event); err != nil {
			return err
		}
	}
	return nil
}
