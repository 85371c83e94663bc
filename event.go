// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import "slices"

// EventType describes which update process caused an [Event].
type EventType int

// Event types fired by [Config] mutations.
const (
	EventAddProperty EventType = iota + 1
	EventClearProperty
	EventSetProperty
	EventClear
)

// EventReload is fired when a watched provider delivers a changed tree
// and the merged configuration is recomputed.
const EventReload EventType = 20

// Event reports one update on a configuration object.
//
// A modification of a configuration causes two events: one with
// BeforeUpdate() true immediately before the modification is performed and
// one with BeforeUpdate() false immediately after. This lets listeners
// react at the point of time relevant to them. Events are immutable after
// construction and freely shareable across goroutines.
type Event struct {
	source        any
	eventType     EventType
	propertyName  string
	propertyValue any
	beforeUpdate  bool
}

// NewEvent creates a new Event. No validation is performed on any field;
// propertyName and propertyValue may be their zero values when the update
// does not concern a single property.
func NewEvent(source any, eventType EventType, propertyName string, propertyValue any, beforeUpdate bool) Event {
	return Event{
		source:        source,
		eventType:     eventType,
		propertyName:  propertyName,
		propertyValue: propertyValue,
		beforeUpdate:  beforeUpdate,
	}
}

// Source returns the object that produced the event,
// usually the configuration that was modified.
func (e Event) Source() any { return e.source }

// Type returns the event's type.
func (e Event) Type() EventType { return e.eventType }

// PropertyName returns the name of the affected property.
// It is empty if no single property caused the event.
func (e Event) PropertyName() string { return e.propertyName }

// PropertyValue returns the value of the affected property, if available.
func (e Event) PropertyValue() any { return e.propertyValue }

// BeforeUpdate reports whether the event was generated before the update
// of the source configuration.
func (e Event) BeforeUpdate() bool { return e.beforeUpdate }

type listener struct {
	onChange func(Event)
	types    []EventType
}

func (l listener) wants(eventType EventType) bool {
	return len(l.types) == 0 || slices.Contains(l.types, eventType)
}

// OnChange registers a callback function that is executed synchronously
// for every fired event whose type is among the given types, or for every
// event if no types are given.
//
// This method is concurrency-safe.
// It panics if onChange is nil.
func (c *Config) OnChange(onChange func(Event), types ...EventType) {
	if onChange == nil {
		panic("cannot register nil onChange")
	}

	c.listenersMutex.Lock()
	defer c.listenersMutex.Unlock()

	c.listeners = append(c.listeners, listener{onChange: onChange, types: types})
}

// fire dispatches an event to every registered listener, in registration order.
func (c *Config) fire(eventType EventType, propertyName string, propertyValue any, beforeUpdate bool) {
	c.listenersMutex.RLock()
	defer c.listenersMutex.RUnlock()

	if len(c.listeners) == 0 {
		return
	}

	event := NewEvent(c, eventType, propertyName, propertyValue, beforeUpdate)
	for _, l := range c.listeners {
		if l.wants(eventType) {
			l.onChange(event)
		}
	}
}
