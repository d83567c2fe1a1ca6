// Package notify routes messages to named delivery channels.
//
// A Channel is anything that can deliver a message to a recipient. New
// channels are added by registering them with a Service; the Service never
// needs to change.
package notify

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

var (
	// ErrUnknownChannel indicates Notify was called with an unregistered name.
	ErrUnknownChannel = errors.New("notify: unsupported notification channel")

	// ErrEmptyRecipient indicates a blank recipient.
	ErrEmptyRecipient = errors.New("notify: recipient is empty")
)

// Channel delivers one message.
type Channel interface {
	Send(recipient, message string) error
}

// ChannelFunc adapts a function to Channel.
type ChannelFunc func(recipient, message string) error

// Send calls f.
func (f ChannelFunc) Send(recipient, message string) error { return f(recipient, message) }

// line writes "[TAG] label: recipient | Message: message" to w.
type line struct {
	w     io.Writer
	tag   string
	label string
}

func (l line) Send(recipient, message string) error {
	if recipient == "" {
		return ErrEmptyRecipient
	}
	_, err := fmt.Fprintf(l.w, "[%s] %s: %s | Message: %s\n", l.tag, l.label, recipient, message)
	return err
}

// Email returns a channel printing e-mail deliveries to w.
func Email(w io.Writer) Channel { return line{w: w, tag: "EMAIL", label: "To"} }

// Slack returns a channel printing Slack posts to w.
func Slack(w io.Writer) Channel { return line{w: w, tag: "SLACK", label: "Channel"} }

// Push returns a channel printing push notifications to w.
func Push(w io.Writer) Channel { return line{w: w, tag: "PUSH", label: "Device"} }

// Service dispatches by channel name. Safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	channels map[string]Channel
}

// NewService returns a Service with no channels.
func NewService() *Service {
	return &Service{channels: make(map[string]Channel)}
}

// Register adds or replaces the channel called name.
func (s *Service) Register(name string, ch Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[name] = ch
}

// Channels lists registered names in sorted order.
func (s *Service) Channels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.channels))
	for n := range s.channels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Notify sends message to recipient through the named channel.
func (s *Service) Notify(name, recipient, message string) error {
	s.mu.RLock()
	ch, ok := s.channels[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, name)
	}
	if err := ch.Send(recipient, message); err != nil {
		return fmt.Errorf("notify: %s: %w", name, err)
	}
	return nil
}
