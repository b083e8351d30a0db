package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/daudtravel/backend/pkg/storage"
	"github.com/google/uuid"
)

var ErrInvalidFormat = errors.New("invalid image format")

var dataURIPattern = regexp.MustCompile(`^data:image/([a-zA-Z]+);base64,`)

// Saver decodes base64 data-URI image payloads and persists them as blobs.
type Saver struct {
	storage storage.BlobStorage
}

func NewSaver(blobStorage storage.BlobStorage) *Saver {
	return &Saver{storage: blobStorage}
}

// SaveImages stores the optional main image and every gallery image,
// returning the main URL (empty when no main image was supplied) and the
// gallery URLs in input order. Any single failure fails the whole batch.
func (s *Saver) SaveImages(mainImage string, gallery []string) (string, []string, error) {
	var mainImageURL string
	if mainImage != "" {
		url, err := s.saveOne(mainImage)
		if err != nil {
			return "", nil, fmt.Errorf("failed to save images: %w", err)
		}
		mainImageURL = url
	}

	galleryURLs := make([]string, 0, len(gallery))
	for _, payload := range gallery {
		url, err := s.saveOne(payload)
		if err != nil {
			return "", nil, fmt.Errorf("failed to save images: %w", err)
		}
		galleryURLs = append(galleryURLs, url)
	}

	return mainImageURL, galleryURLs, nil
}

func (s *Saver) saveOne(dataURI string) (string, error) {
	ext, data, err := Decode(dataURI)
	if err != nil {
		return "", err
	}

	filename := uuid.NewString() + "." + ext
	if err := s.storage.Upload(filename, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return s.storage.PublicURL(filename), nil
}

// Decode splits a data:image/<fmt>;base64,<payload> URI into the format
// extension and the decoded bytes.
func Decode(dataURI string) (string, []byte, error) {
	match := dataURIPattern.FindStringSubmatch(dataURI)
	if match == nil {
		return "", nil, ErrInvalidFormat
	}

	ext := strings.ToLower(match[1])
	payload := dataURI[len(match[0]):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return ext, data, nil
}
