package service

import (
	"context"
	"strings"

	"notes_backend/internal/models"
	"notes_backend/internal/repository"
)

// maxTitleLength bounds note titles.
const maxTitleLength = 200

const defaultPageSize = 10

// NoteService implements the note lifecycle on top of the owner-scoped
// repository. Ownership is enforced by the repository queries themselves;
// a miss never reveals whether the note exists under another owner.
type NoteService struct {
	notes repository.Notes
}

func NewNoteService(notes repository.Notes) *NoteService {
	return &NoteService{notes: notes}
}

var _ Notes = (*NoteService)(nil)

// validateTitle checks the required/bounded title rule.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// parseArchived maps the raw query token to a tri-state filter: recognized
// truthy/falsy tokens select a subset, anything else means "no filter".
func parseArchived(raw string) *bool {
	v := true
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return &v
	case "false", "0", "no":
		v = false
		return &v
	default:
		return nil
	}
}

// Create stores a new note owned by ownerID. Any owner supplied by the
// caller never reaches this point; the handler's request body has no owner
// field.
func (s *NoteService) Create(ctx context.Context, ownerID int, p CreateParams) (*models.Note, error) {
	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}

	n := &models.Note{
		Title:      p.Title,
		Content:    p.Content,
		OwnerID:    ownerID,
		IsArchived: p.IsArchived,
	}
	id, err := s.notes.Insert(ctx, n)
	if err != nil {
		return nil, err
	}
	// re-read through the owner-scoped path to pick up the owner display name
	return s.Get(ctx, ownerID, id)
}

// Get fetches one of the owner's notes.
func (s *NoteService) Get(ctx context.Context, ownerID int, id int64) (*models.Note, error) {
	n, err := s.notes.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNoteNotFound
	}
	return n, nil
}

// List returns one page of the owner's notes plus the total count for the
// same filter, most recently updated first.
func (s *NoteService) List(ctx context.Context, ownerID int, p ListParams) (*NotePage, error) {
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}

	f := repository.NoteFilter{
		Archived: parseArchived(p.Archived),
		Search:   strings.TrimSpace(p.Search),
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}

	count, err := s.notes.Count(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	results, err := s.notes.List(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	return &NotePage{Count: count, Results: results}, nil
}

// Update applies a partial update; unspecified fields stay as they are and
// updated_at refreshes on any successful write.
func (s *NoteService) Update(ctx context.Context, ownerID int, id int64, p UpdateParams) (*models.Note, error) {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return nil, err
		}
	}

	ok, err := s.notes.Update(ctx, ownerID, id, repository.NoteUpdate{
		Title:      p.Title,
		Content:    p.Content,
		IsArchived: p.IsArchived,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoteNotFound
	}
	return s.Get(ctx, ownerID, id)
}

// Delete removes the note permanently.
func (s *NoteService) Delete(ctx context.Context, ownerID int, id int64) error {
	ok, err := s.notes.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoteNotFound
	}
	return nil
}

// Archive marks the note archived. Archiving an already-archived note is a
// no-op success; updated_at still refreshes.
func (s *NoteService) Archive(ctx context.Context, ownerID int, id int64) (*models.Note, error) {
	return s.setArchived(ctx, ownerID, id, true)
}

// Unarchive clears the archive flag, with the same idempotent semantics.
func (s *NoteService) Unarchive(ctx context.Context, ownerID int, id int64) (*models.Note, error) {
	return s.setArchived(ctx, ownerID, id, false)
}

func (s *NoteService) setArchived(ctx context.Context, ownerID int, id int64, archived bool) (*models.Note, error) {
	ok, err := s.notes.SetArchived(ctx, ownerID, id, archived)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoteNotFound
	}
	return s.Get(ctx, ownerID, id)
}
