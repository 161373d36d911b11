package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Codec converts a state value to and from its file form.
type Codec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// JSONCodec stores values as indented JSON.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// Store is a simple persistent value that keeps data in memory and on disk.
type Store[T any] struct {
	mu       sync.RWMutex
	data     T
	filepath string
	defaults T
	codec    Codec[T]
}

// NewStore creates a store backed by path. Nothing is read until Load.
func NewStore[T any](path string, defaults T, codec Codec[T]) *Store[T] {
	if codec == nil {
		codec = JSONCodec[T]{}
	}
	return &Store[T]{
		filepath: path,
		defaults: defaults,
		data:     defaults,
		codec:    codec,
	}
}

func (s *Store[T]) Path() string { return s.filepath }

// Load reads the file. A missing file leaves the defaults in place and is
// not an error; a corrupt one is reported and also leaves the defaults.
func (s *Store[T]) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = s.defaults
	data, err := os.ReadFile(s.filepath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	v, err := s.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", s.filepath, err)
	}
	s.data = v
	return nil
}

// Get returns the current state.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Set updates the state and persists to disk.
func (s *Store[T]) Set(data T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
	return s.save()
}

// Update applies a function to modify the state and persists to disk.
func (s *Store[T]) Update(fn func(T) T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = fn(s.data)
	return s.save()
}

func (s *Store[T]) save() error {
	if err := os.MkdirAll(filepath.Dir(s.filepath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := s.codec.Encode(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	// Write to a temp file, then rename over the real one.
	tempFile := s.filepath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, s.filepath); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

// Reset restores the defaults and removes the file.
func (s *Store[T]) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = s.defaults
	if err := os.Remove(s.filepath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state: %w", err)
	}
	return nil
}
