package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the layout of Event.Date
	DateLayout = "2006-01-02"

	// ClockLayout is the layout of Event.Time and Event.EndTime
	ClockLayout = "15:04"
)

// EventCategory groups events; each category has a fixed set of event names
type EventCategory string

const (
	// CategoryA holds team events
	CategoryA EventCategory = "Category A"

	// CategoryB holds individual events; registrations per participant are capped
	CategoryB EventCategory = "Category B"
)

// EventState is the live status of a scheduled event relative to the current time
type EventState string

const (
	// EventStateUpcoming indicates the event has not started
	EventStateUpcoming EventState = "upcoming"

	// EventStateLive indicates the event is in progress
	EventStateLive EventState = "live"

	// EventStateExpired indicates the event has ended
	EventStateExpired EventState = "expired"
)

// Event is a scheduled program slot
type Event struct {
	// ID is the unique identifier for the event
	ID int `json:"id"`

	// Category is the event's category
	Category EventCategory `json:"category"`

	// Name is the event name, one of the category's event names
	Name string `json:"name"`

	// Date is the calendar date, formatted as DateLayout
	Date string `json:"date"`

	// Time is the start clock time, formatted as ClockLayout
	Time string `json:"time"`

	// EndTime is the end clock time, formatted as ClockLayout
	EndTime string `json:"endTime"`
}

// Window returns the event's start and end as wall-clock times in loc
func (e *Event) Window(loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout+" "+ClockLayout, e.Date+" "+e.Time, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start %q %q: %w", e.Date, e.Time, err)
	}
	end, err := time.ParseInLocation(DateLayout+" "+ClockLayout, e.Date+" "+e.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end %q %q: %w", e.Date, e.EndTime, err)
	}
	return start, end, nil
}

// ScheduledEvent is an event together with its state at a point in time
type ScheduledEvent struct {
	Event
	State EventState `json:"state"`
}
