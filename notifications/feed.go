// Package notifications holds the transient in-app notification feed.
// Failures surface here as toasts; the UI drains the feed and forms keep
// their values, so nothing the user typed is lost.
package notifications

import (
	"log"
	"sync"
	"time"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Toast struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const feedCap = 50

// Feed is a bounded FIFO of pending toasts.
type Feed struct {
	mu    sync.Mutex
	items []Toast
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) push(level Level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Toast{Level: level, Message: message, At: time.Now()})
	if len(f.items) > feedCap {
		f.items = f.items[len(f.items)-feedCap:]
	}
}

func (f *Feed) Info(message string) {
	f.push(LevelInfo, message)
}

func (f *Feed) Error(message string) {
	log.Printf("[toast] %s", message)
	f.push(LevelError, message)
}

// Drain hands every pending toast to the UI and clears the feed.
func (f *Feed) Drain() []Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.items
	f.items = nil
	return items
}
