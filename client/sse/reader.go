// Package sse decodes Server-Sent Events streams for test assertions.
package sse

import (
	"bufio"
	"io"
	"strings"
)

// Event is one decoded server-sent event.
type Event struct {
	// Name is the event type from the "event:" field, empty for plain
	// data events.
	Name string
	// Data is the payload. Consecutive "data:" lines are joined with "\n".
	Data string
	// ID is the last-seen "id:" field value.
	ID string
}

// Reader decodes events from a text/event-stream body.
type Reader struct {
	r      *bufio.Reader
	body   io.Closer
	lastID string
}

// NewReader wraps a response body carrying an SSE stream.
func NewReader(body io.ReadCloser) *Reader {
	return &Reader{r: bufio.NewReader(body), body: body}
}

// Next decodes the next event. It returns io.EOF once the stream ends. The
// event ID is sticky, carrying over to later events until replaced.
func (r *Reader) Next() (Event, error) {
	ev := Event{ID: r.lastID}
	var data []string

	for {
		line, err := r.r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		switch {
		case line == "" && len(data) > 0:
			// Dispatch boundary.
			ev.Data = strings.Join(data, "\n")
			r.lastID = ev.ID
			return ev, nil
		case strings.HasPrefix(line, ":"):
			// Comment line.
		case line != "":
			name, value, _ := strings.Cut(line, ":")
			value = strings.TrimPrefix(value, " ")
			switch name {
			case "event":
				ev.Name = value
			case "data":
				data = append(data, value)
			case "id":
				ev.ID = value
			}
		}

		if err != nil {
			if err == io.EOF && len(data) > 0 {
				ev.Data = strings.Join(data, "\n")
				r.lastID = ev.ID
				return ev, nil
			}
			return Event{}, err
		}
	}
}

// Close releases the underlying stream.
func (r *Reader) Close() error {
	return r.body.Close()
}
