package models

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

const (
	// PageviewKind is the reserved kind marking a page view.
	PageviewKind = "$pageview"

	// UnknownValue substitutes an absent device or page.
	UnknownValue = "Unknown"
)

// Event is a single analytics event as produced by the tracker. Events are
// treated as immutable once produced.
//
// Example JSON:
//
//	{
//	  "kind": "$pageview",
//	  "timestamp": "2025-12-28T18:03:15Z",
//	  "distinctId": "0193f2c1-visitor",
//	  "properties": {
//	    "currentUrl": "https://dealer.example.com/trucks/123",
//	    "deviceType": "Mobile",
//	    "sessionDuration": 42.5
//	  }
//	}
type Event struct {
	Kind       string          `json:"kind"`
	Timestamp  time.Time       `json:"timestamp"`
	DistinctID string          `json:"distinctId,omitempty"`
	Properties EventProperties `json:"properties"`
}

// EventProperties holds the optional attributes of an event. A nil pointer
// means the attribute was absent.
type EventProperties struct {
	DistinctID      string   `json:"distinctId,omitempty"`
	CurrentURL      *string  `json:"currentUrl,omitempty"`
	DeviceType      *string  `json:"deviceType,omitempty"`
	SessionDuration *float64 `json:"sessionDuration,omitempty"`
	UserAgent       string   `json:"userAgent,omitempty"`
}

// UnmarshalJSON decodes the properties leniently: a sessionDuration that is not
// a JSON number is dropped instead of failing the whole event.
func (p *EventProperties) UnmarshalJSON(data []byte) error {
	type plain EventProperties
	aux := struct {
		*plain
		SessionDuration json.RawMessage `json:"sessionDuration,omitempty"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.SessionDuration = NumberOrNil(aux.SessionDuration)
	return nil
}

// NumberOrNil returns the value of raw when it is a JSON number, nil otherwise.
func NumberOrNil(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// IsPageview reports whether the event is of the page-view kind.
func (e *Event) IsPageview() bool {
	return e.Kind == PageviewKind
}

// Identity resolves the actor behind the event: the event's own distinct ID,
// then the one nested in its properties. ok is false for anonymous events.
func (e *Event) Identity() (id string, ok bool) {
	if e.DistinctID != "" {
		return e.DistinctID, true
	}
	if e.Properties.DistinctID != "" {
		return e.Properties.DistinctID, true
	}
	return "", false
}

// Device returns the device category, or UnknownValue when absent or blank.
func (e *Event) Device() string {
	if e.Properties.DeviceType == nil || *e.Properties.DeviceType == "" {
		return UnknownValue
	}
	return *e.Properties.DeviceType
}

// SessionSeconds returns the session duration when it is present and strictly positive.
func (e *Event) SessionSeconds() (float64, bool) {
	d := e.Properties.SessionDuration
	if d == nil || !(*d > 0) || math.IsInf(*d, 1) {
		return 0, false
	}
	return *d, true
}

// Ptr returns a pointer to v, for building optional properties.
func Ptr[T any](v T) *T {
	return &v
}
