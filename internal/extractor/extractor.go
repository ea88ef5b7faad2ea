package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// audiobookNamespace seeds the stable audiobook ids.
var audiobookNamespace = uuid.MustParse("6f1d8a52-3c1e-4b7a-9d55-2f0f3c1b7e90")

// formats maps a lowercase extension to the priority of its scan task.
// Single file audiobooks come first since one file is one complete book.
var formats = map[string]uint8{
	".m4b":  scheduler.PriorityHigh,
	".mp3":  scheduler.PriorityDefault,
	".m4a":  scheduler.PriorityDefault,
	".flac": scheduler.PriorityDefault,
	".ogg":  scheduler.PriorityDefault,
	".opus": scheduler.PriorityDefault,
	".aac":  scheduler.PriorityLow,
	".wma":  scheduler.PriorityLow,
}

var singleFileFormats = map[string]bool{
	".m4b": true,
}

// IsSupported reports whether the file extension is a known audio format.
func IsSupported(path string) bool {
	_, ok := formats[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Priority returns the scan priority of a file.
func Priority(path string) uint8 {
	if p, ok := formats[strings.ToLower(filepath.Ext(path))]; ok {
		return p
	}
	return scheduler.PriorityLow
}

// ID returns the stable id of the audiobook stored at path in a library.
func ID(libraryID, path string) uuid.UUID {
	return uuid.NewSHA1(audiobookNamespace, []byte(libraryID+"\x00"+path))
}

// Extractor reads audiobook metadata from audio files. Embedded tags win over
// what can be inferred from the directory layout.
type Extractor struct {
	now func() time.Time
}

func New() *Extractor {
	return &Extractor{now: time.Now}
}

// Extract implements scheduler.ExtractFunc.
func (e *Extractor) Extract(ctx context.Context, libraryID string, path string) (*models.Audiobook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := formats[ext]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	book := &models.Audiobook{
		ID:         ID(libraryID, path),
		LibraryID:  libraryID,
		Path:       path,
		Format:     strings.TrimPrefix(ext, "."),
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime().UTC(),
		ScannedAt:  e.now().UTC(),
	}

	meta, err := readTags(path)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		applyTags(book, meta)
	}
	inferFromPath(book, singleFileFormats[ext])

	return book, nil
}

// readTags returns nil metadata when the file carries no readable tags.
func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		if !errors.Is(err, tag.ErrNoTagsFound) {
			zap.S().Named("extractor").Debugw("failed to read tags, using path", "path", path, "error", err)
		}
		return nil, nil
	}
	return meta, nil
}

func applyTags(book *models.Audiobook, meta tag.Metadata) {
	book.Title = firstNonEmpty(meta.Album(), meta.Title())
	book.Author = firstNonEmpty(meta.AlbumArtist(), meta.Artist())
	book.Narrator = strings.TrimSpace(meta.Composer())
	book.Album = strings.TrimSpace(meta.Album())
	book.Genre = strings.TrimSpace(meta.Genre())
	book.Year = meta.Year()
	book.Track, _ = meta.Track()
}

// inferFromPath fills title and author from the layout
// <library>/<author>/<title>.m4b or <library>/<author>/<title>/<part>.mp3.
func inferFromPath(book *models.Audiobook, singleFile bool) {
	dir := filepath.Dir(book.Path)
	stem := strings.TrimSuffix(filepath.Base(book.Path), filepath.Ext(book.Path))

	title, authorDir := filepath.Base(dir), filepath.Dir(dir)
	if singleFile {
		title, authorDir = stem, dir
	}

	if book.Title == "" {
		book.Title = title
	}
	if book.Author == "" {
		author := filepath.Base(authorDir)
		if author != "." && author != string(filepath.Separator) {
			book.Author = author
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
