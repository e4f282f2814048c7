// Package mockdata loads the roster and conversation history the app starts with.
package mockdata

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/matheus3301/messenger/internal/chat"
)

//go:embed seed.toml
var defaultSeed string

// Conversation is the seeded history of one contact.
type Conversation struct {
	Contact  string         `toml:"contact"`
	Messages []chat.Message `toml:"messages"`
}

// Seed is the full start-up data set.
type Seed struct {
	Contacts      []chat.Contact `toml:"contacts"`
	Conversations []Conversation `toml:"conversations"`
}

// Default returns the built-in seed.
func Default() (*Seed, error) {
	return Parse(defaultSeed)
}

// Load returns the seed at path, or the built-in seed when path is empty.
func Load(path string) (*Seed, error) {
	if path == "" {
		return Default()
	}
	var s Seed
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	if err := s.normalize(); err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return &s, nil
}

// Parse decodes a seed from TOML text.
func Parse(data string) (*Seed, error) {
	var s Seed
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

// normalize fills in default message types and rejects seeds whose
// conversations reference unknown contacts or reuse message ids.
func (s *Seed) normalize() error {
	known := make(map[string]bool, len(s.Contacts))
	for _, c := range s.Contacts {
		known[c.ID] = true
	}

	msgIDs := make(map[string]bool)
	for ci := range s.Conversations {
		conv := &s.Conversations[ci]
		if !known[conv.Contact] {
			return fmt.Errorf("conversation for unknown contact %q", conv.Contact)
		}
		for mi := range conv.Messages {
			m := &conv.Messages[mi]
			if m.ID == "" {
				return fmt.Errorf("contact %q: message %d has no id", conv.Contact, mi)
			}
			if msgIDs[m.ID] {
				return fmt.Errorf("duplicate message id %q", m.ID)
			}
			msgIDs[m.ID] = true
			switch m.Type {
			case "":
				m.Type = chat.TypeText
			case chat.TypeText, chat.TypeImage, chat.TypeFile:
			default:
				return fmt.Errorf("message %q: unknown type %q", m.ID, m.Type)
			}
		}
	}
	return nil
}
