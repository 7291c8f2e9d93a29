package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// PictureMetadata records what a run picked and where it came from
type PictureMetadata struct {
	// Source
	Date     string `json:"date"`
	PageURL  string `json:"page_url"`
	ImageURL string `json:"image_url,omitempty"`

	// Chosen file
	File     string `json:"file"`
	Fallback bool   `json:"fallback"`
	FileSize int64  `json:"file_size,omitempty"`
	Format   string `json:"format,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`

	// Content
	Caption string `json:"caption,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}

// Saver persists a named blob, see storage.Manager.SaveFile
type Saver interface {
	SaveFile(name string, data []byte) (string, error)
}

// SidecarName returns the metadata file name for an image file
func SidecarName(imageFile string) string {
	return filepath.Base(imageFile) + ".json"
}

// Save writes the metadata next to the image through s and returns its path
func (m *PictureMetadata) Save(s Saver) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	path, err := s.SaveFile(SidecarName(m.File), data)
	if err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}
	return path, nil
}

// Load reads the metadata stored for an image path
func Load(imagePath string) (*PictureMetadata, error) {
	data, err := os.ReadFile(imagePath + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var meta PictureMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	return &meta, nil
}

// GetAspectRatio returns the aspect ratio as a string
func (m *PictureMetadata) GetAspectRatio() string {
	if m.Height == 0 {
		return "unknown"
	}

	ratio := float64(m.Width) / float64(m.Height)

	switch {
	case ratio > 1.7 && ratio < 1.8:
		return "16:9"
	case ratio > 1.3 && ratio < 1.4:
		return "4:3"
	case ratio > 0.9 && ratio < 1.1:
		return "1:1"
	case ratio > 0.55 && ratio < 0.57:
		return "9:16"
	case ratio > 0.74 && ratio < 0.76:
		return "3:4"
	default:
		return fmt.Sprintf("%.2f:1", ratio)
	}
}
