package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"notes_backend/internal/models"
)

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

var _ Notes = (*NoteRepository)(nil)

// Owner username is resolved via JOIN so callers only ever see the display
// name, never another user's numeric id.
const (
	selectNotesSQL = `SELECT n.id, n.title, n.content, n.created_at, n.updated_at, u.username, n.owner_id, n.is_archived FROM notes n JOIN users u ON u.id = n.owner_id`
	countNotesSQL  = `SELECT COUNT(*) FROM notes n`

	insertNoteSQL = `INSERT INTO notes (title, content, created_at, updated_at, owner_id, is_archived) VALUES (?, ?, ?, ?, ?, ?)`
	deleteNoteSQL = `DELETE FROM notes WHERE id = ? AND owner_id = ?`

	setArchivedSQL = `UPDATE notes SET is_archived = ?, updated_at = ? WHERE id = ? AND owner_id = ?`

	orderNotesSQL = ` ORDER BY n.updated_at DESC, n.id DESC`
)

// noteConds builds the WHERE predicates for a listing: always owner-scoped,
// then archived and substring search conjoined only when present.
func noteConds(ownerID int, f NoteFilter) ([]string, []any) {
	conds := []string{"n.owner_id = ?"}
	args := []any{ownerID}

	if f.Archived != nil {
		conds = append(conds, "n.is_archived = ?")
		args = append(args, *f.Archived)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		conds = append(conds, "(instr(lower(n.title), lower(?)) > 0 OR instr(lower(n.content), lower(?)) > 0)")
		args = append(args, s, s)
	}
	return conds, args
}

// Insert stores a new note. CreatedAt/UpdatedAt are set to now (UTC) if zero.
func (r *NoteRepository) Insert(ctx context.Context, n *models.Note) (int64, error) {
	now := time.Now().UTC()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	} else {
		n.CreatedAt = n.CreatedAt.UTC()
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.CreatedAt
	} else {
		n.UpdatedAt = n.UpdatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertNoteSQL,
		n.Title, n.Content, n.CreatedAt, n.UpdatedAt, n.OwnerID, n.IsArchived)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for note: %w", err)
	}
	n.ID = id
	return id, nil
}

// GetByID fetches a note by id, scoped to the owner. Returns (nil, nil) when
// the note does not exist or belongs to someone else; the two cases are
// indistinguishable on purpose.
func (r *NoteRepository) GetByID(ctx context.Context, ownerID int, id int64) (*models.Note, error) {
	q := selectNotesSQL + ` WHERE n.id = ? AND n.owner_id = ?`

	var n models.Note
	err := r.db.QueryRowContext(ctx, q, id, ownerID).Scan(
		&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
		&n.Owner, &n.OwnerID, &n.IsArchived,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select note %d: %w", id, err)
	}
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return &n, nil
}

// List returns the owner's notes matching the filter, most recently
// updated first.
func (r *NoteRepository) List(ctx context.Context, ownerID int, f NoteFilter) ([]models.Note, error) {
	conds, args := noteConds(ownerID, f)

	q := selectNotesSQL + " WHERE " + strings.Join(conds, " AND ") + orderNotesSQL
	if f.Limit > 0 {
		q += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Note, 0, 16)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
			&n.Owner, &n.OwnerID, &n.IsArchived,
		); err != nil {
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		n.CreatedAt = n.CreatedAt.UTC()
		n.UpdatedAt = n.UpdatedAt.UTC()
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate note rows: %w", err)
	}
	return out, nil
}

// Count returns the total number of the owner's notes matching the filter,
// ignoring Limit/Offset.
func (r *NoteRepository) Count(ctx context.Context, ownerID int, f NoteFilter) (int, error) {
	conds, args := noteConds(ownerID, f)
	q := countNotesSQL + " WHERE " + strings.Join(conds, " AND ")

	var count int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

// Update applies a partial update and refreshes updated_at. Returns false if
// the owner has no such note.
func (r *NoteRepository) Update(ctx context.Context, ownerID int, id int64, u NoteUpdate) (bool, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if u.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *u.Title)
	}
	if u.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *u.Content)
	}
	if u.IsArchived != nil {
		sets = append(sets, "is_archived = ?")
		args = append(args, *u.IsArchived)
	}
	// updated_at refreshes on every successful write, even an empty one
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())

	q := "UPDATE notes SET " + strings.Join(sets, ", ") + " WHERE id = ? AND owner_id = ?"
	args = append(args, id, ownerID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("update note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for note %d: %w", id, err)
	}
	return affected > 0, nil
}

// Delete removes the note permanently. Returns false if the owner has no
// such note.
func (r *NoteRepository) Delete(ctx context.Context, ownerID int, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteNoteSQL, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for note %d: %w", id, err)
	}
	return affected > 0, nil
}

// SetArchived flips the archive flag unconditionally and refreshes
// updated_at, so repeating the action is a no-op success.
func (r *NoteRepository) SetArchived(ctx context.Context, ownerID int, id int64, archived bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, setArchivedSQL, archived, time.Now().UTC(), id, ownerID)
	if err != nil {
		return false, fmt.Errorf("set archived on note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for note %d: %w", id, err)
	}
	return affected > 0, nil
}
