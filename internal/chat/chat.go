// Package chat defines the conversation model produced by the exporter.
package chat

import (
	"encoding/json"
	"fmt"
	"time"
)

// UnixTime is a point in time that serializes as integer epoch seconds,
// matching the timestamp field of the input log format.
type UnixTime time.Time

// FromEpoch converts non-negative epoch seconds into a UnixTime.
func FromEpoch(sec int64) UnixTime {
	return UnixTime(time.Unix(sec, 0).UTC())
}

// Time returns the wrapped time.Time.
func (t UnixTime) Time() time.Time {
	return time.Time(t)
}

// MarshalJSON implements json.Marshaler for UnixTime.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Unix())
}

// UnmarshalJSON implements json.Unmarshaler for UnixTime.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	var sec int64
	if err := json.Unmarshal(data, &sec); err != nil {
		return err
	}
	if sec < 0 {
		return fmt.Errorf("negative epoch seconds: %d", sec)
	}
	*t = FromEpoch(sec)
	return nil
}

// Message is a single chat entry. Sender casing is preserved as read;
// Content is rewritten at most once, by redaction, before export.
type Message struct {
	Timestamp UnixTime `json:"timestamp"`
	Sender    string   `json:"sender"`
	Content   string   `json:"content"`
}

// Conversation is the exported unit: the name from the first line of the
// input file and the surviving messages in their original order.
type Conversation struct {
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
}
