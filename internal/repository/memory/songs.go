package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/beatforge/backbeat/internal/errs"
	"github.com/beatforge/backbeat/internal/model"
	"github.com/beatforge/backbeat/internal/store"
	"github.com/gofrs/uuid/v5"
)

// SongRepo implements repository.SongRepository.
type SongRepo struct{ st *store.Store }

// NewSongRepo constructs a song repository.
func NewSongRepo(st *store.Store) *SongRepo { return &SongRepo{st: st} }

// Create inserts a new song. The generated key carries the only uniqueness
// constraint; duplicate titles are allowed.
func (r *SongRepo) Create(ctx context.Context, s *model.Song) error {
	return r.st.Songs.Insert(s.ID.String(), *s)
}

// Get loads a song by ID.
func (r *SongRepo) Get(ctx context.Context, id uuid.UUID) (*model.Song, error) {
	s, ok := r.st.Songs.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("song: %w", errs.ErrNotFound)
	}
	return &s, nil
}

// List returns the full catalog.
func (r *SongRepo) List(ctx context.Context) ([]model.Song, error) {
	return r.st.Songs.List(), nil
}

// Update applies the patch field-by-field and bumps UpdatedAt.
func (r *SongRepo) Update(ctx context.Context, id uuid.UUID, p model.SongPatch) (*model.Song, error) {
	s, err := r.st.Songs.Update(id.String(), func(s *model.Song) {
		if p.Title != nil {
			s.Title = *p.Title
		}
		if p.Artist != nil {
			s.Artist = *p.Artist
		}
		if p.BPM != nil {
			s.BPM = *p.BPM
		}
		if p.DurationSeconds != nil {
			s.DurationSeconds = *p.DurationSeconds
		}
		if p.BeatmapData != nil {
			s.BeatmapData = p.BeatmapData
		}
		if p.AudioPath != nil {
			s.AudioPath = *p.AudioPath
		}
		if p.CoverPath != nil {
			s.CoverPath = p.CoverPath
		}
		if p.Version != nil {
			s.Version = *p.Version
		}
		if p.IsPublished != nil {
			s.IsPublished = *p.IsPublished
		}
		s.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, fmt.Errorf("song: %w", err)
	}
	return &s, nil
}

// Delete removes the song without cascading to dependents.
func (r *SongRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.st.Songs.Delete(id.String()); err != nil {
		return fmt.Errorf("song: %w", err)
	}
	return nil
}
