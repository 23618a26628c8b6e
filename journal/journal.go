// Package journal is an append-only event log under the data directory.
// It records launch lifecycle events so `gemdeck history` can show what
// happened after the fact.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gemdeck/gemdeck/common"
	"github.com/gemdeck/gemdeck/pathlib"
)

const journalFilename = "event.log"

var writeLock sync.Mutex

// Event is one journal line. When is unix seconds; Identity names the
// entity the event is about (normally a profile id).
type Event struct {
	When     int64  `json:"when"`
	Event    string `json:"event"`
	Identity string `json:"identity"`
	Detail   string `json:"detail"`
}

func journalPath() string {
	return filepath.Join(common.Product.Home(), journalFilename)
}

// Unify collapses runs of whitespace into single spaces so details stay
// one line each.
func Unify(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Post appends one event. Failures are returned, never fatal; a broken
// journal must not break a launch.
func Post(event, identity, form string, details ...interface{}) error {
	entry := Event{
		When:     time.Now().Unix(),
		Event:    Unify(event),
		Identity: Unify(identity),
		Detail:   Unify(fmt.Sprintf(form, details...)),
	}
	content, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := pathlib.EnsureDirectory(common.Product.Home()); err != nil {
		return err
	}
	writeLock.Lock()
	defer writeLock.Unlock()
	handle, err := os.OpenFile(journalPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer handle.Close()
	_, err = fmt.Fprintln(handle, string(content))
	return err
}

// Events reads the full journal in order. Unparseable lines are skipped;
// a missing journal is just empty.
func Events() ([]Event, error) {
	handle, err := os.Open(journalPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []Event{}, nil
		}
		return nil, err
	}
	defer handle.Close()

	result := []Event{}
	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		var entry Event
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			common.Debug("skipping journal line %q: %v", line, err)
			continue
		}
		result = append(result, entry)
	}
	return result, scanner.Err()
}
