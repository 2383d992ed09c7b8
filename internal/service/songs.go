package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/repository"
)

// SongService defines catalog operations.
type SongService interface {
	Create(ctx context.Context, in model.CreateSong) (*model.Song, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Song, error)
	List(ctx context.Context) ([]model.Song, error)
	Update(ctx context.Context, id uuid.UUID, p model.SongPatch) (*model.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SongServiceImpl struct {
	songs repository.SongRepository
}

// NewSongService constructs SongService.
func NewSongService(songs repository.SongRepository) *SongServiceImpl {
	return &SongServiceImpl{songs: songs}
}

// Create validates required fields, applies defaults (version "1.0",
// unpublished) and inserts the song.
func (s *SongServiceImpl) Create(ctx context.Context, in model.CreateSong) (*model.Song, error) {
	switch {
	case in.Title == "":
		return nil, fmt.Errorf("%w: empty title", errs.ErrValidation)
	case in.Artist == "":
		return nil, fmt.Errorf("%w: empty artist", errs.ErrValidation)
	case in.BPM <= 0:
		return nil, fmt.Errorf("%w: bpm must be positive", errs.ErrValidation)
	case in.DurationSeconds <= 0:
		return nil, fmt.Errorf("%w: durationSeconds must be positive", errs.ErrValidation)
	case in.BeatmapData == nil:
		return nil, fmt.Errorf("%w: missing beatmapData", errs.ErrValidation)
	case in.AudioPath == "":
		return nil, fmt.Errorf("%w: empty audioPath", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	song := &model.Song{
		ID:              id,
		Title:           in.Title,
		Artist:          in.Artist,
		BPM:             in.BPM,
		DurationSeconds: in.DurationSeconds,
		BeatmapData:     in.BeatmapData,
		AudioPath:       in.AudioPath,
		CoverPath:       in.CoverPath,
		Version:         "1.0",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Version != nil {
		song.Version = *in.Version
	}
	if in.IsPublished != nil {
		song.IsPublished = *in.IsPublished
	}
	if err := s.songs.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// Get returns a song by id.
func (s *SongServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Song, error) {
	return s.songs.Get(ctx, id)
}

// List returns the full catalog.
func (s *SongServiceImpl) List(ctx context.Context) ([]model.Song, error) {
	return s.songs.List(ctx)
}

// Update applies the patch; an empty patch only advances updatedAt.
func (s *SongServiceImpl) Update(ctx context.Context, id uuid.UUID, p model.SongPatch) (*model.Song, error) {
	if p.BPM != nil && *p.BPM <= 0 {
		return nil, fmt.Errorf("%w: bpm must be positive", errs.ErrValidation)
	}
	if p.DurationSeconds != nil && *p.DurationSeconds <= 0 {
		return nil, fmt.Errorf("%w: durationSeconds must be positive", errs.ErrValidation)
	}
	return s.songs.Update(ctx, id, p)
}

// Delete removes the song record.
func (s *SongServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.songs.Delete(ctx, id)
}
