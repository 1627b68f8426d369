package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

// Storage is the durable backend for the booking collection. Only the
// collection itself is persisted; transient flags never reach storage.
type Storage interface {
	Load() ([]domain.Booking, error)
	Save(bookings []domain.Booking) error
}

// bookingRecord is the single persisted document.
type bookingRecord struct {
	Bookings []domain.Booking `json:"bookings"`
}

// FileStorage keeps the booking record in one JSON file. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn record.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() ([]domain.Booking, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookings file: %w", err)
	}

	var record bookingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode bookings file: %w", err)
	}
	return record.Bookings, nil
}

func (s *FileStorage) Save(bookings []domain.Booking) error {
	data, err := json.MarshalIndent(bookingRecord{Bookings: bookings}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write bookings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace bookings file: %w", err)
	}
	return nil
}

var _ Storage = (*FileStorage)(nil)
