// This file is part of gbaic.
//
// gbaic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbaic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbaic.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry is a single log entry.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// the number of times the entry has been repeated immediately after the
	// first instance
	repeated int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	return s.String()
}

// Logger is a bounded list of log entries.
type Logger struct {
	crit       sync.Mutex
	maxEntries int
	entries    []Entry
	echo       io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
// The number of entries kept is limited to maxEntries. Older entries are
// dropped.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: max(maxEntries, 1),
		entries:    make([]Entry, 0),
	}
}

// Log adds a new entry. The detail argument can be of type string, error,
// fmt.Stringer or any other type, which will be formatted with the %v verb.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if l == nil || !perm.AllowLogging() {
		return
	}

	switch d := detail.(type) {
	case string:
		l.log(tag, d)
	case error:
		l.log(tag, d.Error())
	case fmt.Stringer:
		l.log(tag, d.String())
	default:
		l.log(tag, fmt.Sprintf("%v", d))
	}
}

// Logf adds a new entry, formatting the detail string with the arguments.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if l == nil || !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *Logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// entries are single lines
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		e = &l.entries[n-1]
		e.repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]
	}

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	// repeated entries are not echoed again. the repeat count will be seen
	// when the log is written in full
	if l.echo != nil && e.repeated == 0 {
		io.WriteString(l.echo, e.String())
		io.WriteString(l.echo, "\n")
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	if l == nil {
		return
	}
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write the contents of the log to the io.Writer. Returns false if there
// was nothing to write.
func (l *Logger) Write(output io.Writer) bool {
	if l == nil {
		return false
	}
	l.crit.Lock()
	defer l.crit.Unlock()

	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
	return true
}

// Tail writes the most recent entries to the io.Writer. Asking for more
// entries than there are in the log is fine.
func (l *Logger) Tail(output io.Writer, number int) {
	if l == nil {
		return
	}
	l.crit.Lock()
	defer l.crit.Unlock()

	number = min(max(number, 0), len(l.entries))
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// SetEcho prints new entries to the io.Writer as they arrive. A nil writer
// turns echoing off.
func (l *Logger) SetEcho(output io.Writer) {
	if l == nil {
		return
	}
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}
