package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"notes_backend/internal/models"
	"notes_backend/internal/repository"
)

// mockNotesRepo mocks repository.Notes.
type mockNotesRepo struct {
	InsertFn      func(n *models.Note) (int64, error)
	GetByIDFn     func(ownerID int, id int64) (*models.Note, error)
	ListFn        func(ownerID int, f repository.NoteFilter) ([]models.Note, error)
	CountFn       func(ownerID int, f repository.NoteFilter) (int, error)
	UpdateFn      func(ownerID int, id int64, u repository.NoteUpdate) (bool, error)
	DeleteFn      func(ownerID int, id int64) (bool, error)
	SetArchivedFn func(ownerID int, id int64, archived bool) (bool, error)

	lastInserted *models.Note
	lastFilter   repository.NoteFilter
	lastUpdate   repository.NoteUpdate
	lastArchived *bool
}

func (m *mockNotesRepo) Insert(_ context.Context, n *models.Note) (int64, error) {
	m.lastInserted = n
	return m.InsertFn(n)
}

func (m *mockNotesRepo) GetByID(_ context.Context, ownerID int, id int64) (*models.Note, error) {
	return m.GetByIDFn(ownerID, id)
}

func (m *mockNotesRepo) List(_ context.Context, ownerID int, f repository.NoteFilter) ([]models.Note, error) {
	m.lastFilter = f
	return m.ListFn(ownerID, f)
}

func (m *mockNotesRepo) Count(_ context.Context, ownerID int, f repository.NoteFilter) (int, error) {
	m.lastFilter = f
	return m.CountFn(ownerID, f)
}

func (m *mockNotesRepo) Update(_ context.Context, ownerID int, id int64, u repository.NoteUpdate) (bool, error) {
	m.lastUpdate = u
	return m.UpdateFn(ownerID, id, u)
}

func (m *mockNotesRepo) Delete(_ context.Context, ownerID int, id int64) (bool, error) {
	return m.DeleteFn(ownerID, id)
}

func (m *mockNotesRepo) SetArchived(_ context.Context, ownerID int, id int64, archived bool) (bool, error) {
	m.lastArchived = &archived
	return m.SetArchivedFn(ownerID, id, archived)
}

func storedNote(id int64, ownerID int) *models.Note {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Note{
		ID: id, Title: "Stored", Content: "body",
		CreatedAt: now, UpdatedAt: now,
		Owner: "alice", OwnerID: ownerID,
	}
}

// --- Create ---

func TestNoteService_Create_ForcesOwnerToPrincipal(t *testing.T) {
	repo := &mockNotesRepo{
		InsertFn: func(n *models.Note) (int64, error) { n.ID = 5; return 5, nil },
		GetByIDFn: func(ownerID int, id int64) (*models.Note, error) {
			if ownerID != 7 || id != 5 {
				t.Fatalf("re-read with wrong scope: owner=%d id=%d", ownerID, id)
			}
			return storedNote(5, 7), nil
		},
	}
	svc := NewNoteService(repo)

	n, err := svc.Create(context.Background(), 7, CreateParams{Title: "Groceries", Content: "milk"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if repo.lastInserted.OwnerID != 7 {
		t.Fatalf("inserted owner: got %d, want the principal (7)", repo.lastInserted.OwnerID)
	}
	if n.ID != 5 || n.Owner != "alice" {
		t.Fatalf("unexpected note: %+v", n)
	}
}

func TestNoteService_Create_TitleValidation(t *testing.T) {
	svc := NewNoteService(&mockNotesRepo{})

	if _, err := svc.Create(context.Background(), 7, CreateParams{Title: "   "}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("blank title: got %v, want ErrTitleRequired", err)
	}

	long := strings.Repeat("x", 201)
	if _, err := svc.Create(context.Background(), 7, CreateParams{Title: long}); !errors.Is(err, ErrTitleTooLong) {
		t.Fatalf("201-char title: got %v, want ErrTitleTooLong", err)
	}

	// exactly 200 is fine; verified by reaching the repo
	okRepo := &mockNotesRepo{
		InsertFn:  func(n *models.Note) (int64, error) { return 1, nil },
		GetByIDFn: func(int, int64) (*models.Note, error) { return storedNote(1, 7), nil },
	}
	svc = NewNoteService(okRepo)
	if _, err := svc.Create(context.Background(), 7, CreateParams{Title: strings.Repeat("x", 200)}); err != nil {
		t.Fatalf("200-char title rejected: %v", err)
	}
}

// --- Get ---

func TestNoteService_Get_MissAndForeignAreNotFound(t *testing.T) {
	repo := &mockNotesRepo{
		// repository returns (nil, nil) both for nonexistent ids and for
		// notes owned by someone else
		GetByIDFn: func(int, int64) (*models.Note, error) { return nil, nil },
	}
	svc := NewNoteService(repo)

	if _, err := svc.Get(context.Background(), 7, 99); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("got %v, want ErrNoteNotFound", err)
	}
}

// --- List ---

func TestNoteService_List_ArchivedTokenParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want *bool // nil = no filter
	}{
		{"true", boolPtr(true)},
		{"1", boolPtr(true)},
		{"YES", boolPtr(true)},
		{"false", boolPtr(false)},
		{"0", boolPtr(false)},
		{"No", boolPtr(false)},
		{"", nil},
		{"banana", nil}, // unrecognized token means no filter, not an error
	}

	for _, tc := range cases {
		t.Run("archived="+tc.raw, func(t *testing.T) {
			repo := &mockNotesRepo{
				CountFn: func(int, repository.NoteFilter) (int, error) { return 0, nil },
				ListFn:  func(int, repository.NoteFilter) ([]models.Note, error) { return nil, nil },
			}
			svc := NewNoteService(repo)

			if _, err := svc.List(context.Background(), 7, ListParams{Archived: tc.raw, PageSize: 10}); err != nil {
				t.Fatalf("List returned error: %v", err)
			}

			got := repo.lastFilter.Archived
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("expected no archived filter, got %v", *got)
			case tc.want != nil && got == nil:
				t.Fatalf("expected archived filter %v, got none", *tc.want)
			case tc.want != nil && *got != *tc.want:
				t.Fatalf("archived filter: got %v, want %v", *got, *tc.want)
			}
		})
	}
}

func TestNoteService_List_PagingAndCount(t *testing.T) {
	repo := &mockNotesRepo{
		CountFn: func(int, repository.NoteFilter) (int, error) { return 23, nil },
		ListFn: func(_ int, f repository.NoteFilter) ([]models.Note, error) {
			return []models.Note{*storedNote(1, 7)}, nil
		},
	}
	svc := NewNoteService(repo)

	page, err := svc.List(context.Background(), 7, ListParams{Page: 3, PageSize: 10, Search: "  plan  "})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Count != 23 || len(page.Results) != 1 {
		t.Fatalf("unexpected page: count=%d results=%d", page.Count, len(page.Results))
	}
	if repo.lastFilter.Limit != 10 || repo.lastFilter.Offset != 20 {
		t.Fatalf("paging: limit=%d offset=%d", repo.lastFilter.Limit, repo.lastFilter.Offset)
	}
	if repo.lastFilter.Search != "plan" {
		t.Fatalf("search not trimmed: %q", repo.lastFilter.Search)
	}
}

// --- Update ---

func TestNoteService_Update_PartialAndNotFound(t *testing.T) {
	title := "New title"
	repo := &mockNotesRepo{
		UpdateFn:  func(int, int64, repository.NoteUpdate) (bool, error) { return true, nil },
		GetByIDFn: func(int, int64) (*models.Note, error) { return storedNote(5, 7), nil },
	}
	svc := NewNoteService(repo)

	if _, err := svc.Update(context.Background(), 7, 5, UpdateParams{Title: &title}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if repo.lastUpdate.Title == nil || *repo.lastUpdate.Title != title {
		t.Fatalf("title not forwarded: %+v", repo.lastUpdate)
	}
	if repo.lastUpdate.Content != nil || repo.lastUpdate.IsArchived != nil {
		t.Fatalf("unspecified fields must stay nil: %+v", repo.lastUpdate)
	}

	repo.UpdateFn = func(int, int64, repository.NoteUpdate) (bool, error) { return false, nil }
	if _, err := svc.Update(context.Background(), 7, 5, UpdateParams{Title: &title}); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("got %v, want ErrNoteNotFound", err)
	}
}

func TestNoteService_Update_ValidatesProvidedTitle(t *testing.T) {
	svc := NewNoteService(&mockNotesRepo{})
	blank := " "

	if _, err := svc.Update(context.Background(), 7, 5, UpdateParams{Title: &blank}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("got %v, want ErrTitleRequired", err)
	}
}

// --- Delete ---

func TestNoteService_Delete(t *testing.T) {
	repo := &mockNotesRepo{
		DeleteFn: func(int, int64) (bool, error) { return true, nil },
	}
	svc := NewNoteService(repo)

	if err := svc.Delete(context.Background(), 7, 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	repo.DeleteFn = func(int, int64) (bool, error) { return false, nil }
	if err := svc.Delete(context.Background(), 7, 5); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("got %v, want ErrNoteNotFound", err)
	}
}

// --- Archive / Unarchive ---

func TestNoteService_ArchiveUnarchive(t *testing.T) {
	repo := &mockNotesRepo{
		SetArchivedFn: func(int, int64, bool) (bool, error) { return true, nil },
		GetByIDFn:     func(int, int64) (*models.Note, error) { return storedNote(5, 7), nil },
	}
	svc := NewNoteService(repo)

	if _, err := svc.Archive(context.Background(), 7, 5); err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	if repo.lastArchived == nil || !*repo.lastArchived {
		t.Fatalf("Archive must set the flag to true")
	}

	if _, err := svc.Unarchive(context.Background(), 7, 5); err != nil {
		t.Fatalf("Unarchive returned error: %v", err)
	}
	if repo.lastArchived == nil || *repo.lastArchived {
		t.Fatalf("Unarchive must set the flag to false")
	}

	// archiving something you don't own is indistinguishable from a miss
	repo.SetArchivedFn = func(int, int64, bool) (bool, error) { return false, nil }
	if _, err := svc.Archive(context.Background(), 8, 5); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("got %v, want ErrNoteNotFound", err)
	}
}

func boolPtr(v bool) *bool { return &v }
