package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"petpal/internal/ports/kv"
)

// Store persiste todas las keys como un objeto JSON {key: value} en un único archivo.
// Cada Set/Remove escribe el archivo completo antes de retornar.
type Store struct {
	mu    sync.RWMutex
	path  string
	byKey map[string]string
}

var _ kv.Store = (*Store)(nil)

// Open carga el archivo si existe. Archivo inexistente o vacío => store vacío.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("file store: path required")
	}
	s := &Store{
		path:  path,
		byKey: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("file store: read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &s.byKey); err != nil {
		return fmt.Errorf("file store: decode %s: %w", s.path, err)
	}
	if s.byKey == nil {
		s.byKey = make(map[string]string)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.byKey[key]
	s.byKey[key] = value
	if err := s.flush(); err != nil {
		// rollback en memoria para no divergir del archivo
		if had {
			s.byKey[key] = prev
		} else {
			delete(s.byKey, key)
		}
		return err
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.byKey[key]
	if !had {
		return nil
	}
	delete(s.byKey, key)
	if err := s.flush(); err != nil {
		s.byKey[key] = prev
		return err
	}
	return nil
}

// flush requiere s.mu tomado.
func (s *Store) flush() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("file store: mkdir: %w", err)
		}
	}
	return atomicWriteFileJSON(s.path, s.byKey)
}

func atomicWriteFileJSON(filePath string, data any) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}
