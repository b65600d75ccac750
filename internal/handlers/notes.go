package handlers

import (
	"net/http"
	"strconv"

	"notes_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTOs. Neither carries an owner field: the owner is always the
// authenticated caller, so a client-supplied owner simply has nowhere to go.
type createNoteRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	IsArchived bool   `json:"is_archived"`
}

type updateNoteRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	IsArchived *bool   `json:"is_archived"`
}

const errNoteNotFoundMsg = "note not found"

// noteIDParam parses the {id} path segment. A malformed id behaves like a
// missing note.
func (h *Handler) noteIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoteNotFoundMsg})
		return 0, false
	}
	return id, true
}

// pageLink rebuilds the request URL with the given page number, preserving
// the other query parameters.
func pageLink(c *gin.Context, page int) string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// listEnvelope shapes one page as {count, next, previous, results}.
func (h *Handler) listEnvelope(c *gin.Context, page int, np *service.NotePage) gin.H {
	var next, previous any
	if page*h.pageSize < np.Count {
		next = pageLink(c, page+1)
	}
	if page > 1 {
		previous = pageLink(c, page-1)
	}
	return gin.H{
		"count":    np.Count,
		"next":     next,
		"previous": previous,
		"results":  np.Results,
	}
}

// @Summary      List own notes
// @Description  archived accepts true/1/yes or false/0/no (case-insensitive);
// @Description  anything else means no filter. search matches title or
// @Description  content, case-insensitively.
// @Tags         notes
// @Produce      json
// @Param        archived  query  string  false  "Archive filter"
// @Param        search    query  string  false  "Substring search"
// @Param        page      query  int     false  "Page number (1-based)"
// @Success      200  {object}  map[string]interface{}  "count, next, previous, results"
// @Failure      401  {object}  map[string]string
// @Router       /notes [get]
// @Security     BearerAuth
func (h *Handler) listNotes(c *gin.Context) {
	page := 1
	if qs := c.Query("page"); qs != "" {
		if p, err := strconv.Atoi(qs); err == nil && p > 0 {
			page = p
		}
	}

	np, err := h.services.List(c.Request.Context(), principalID(c), service.ListParams{
		Archived: c.Query("archived"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: h.pageSize,
	})
	if err != nil {
		h.respondServiceError(c, "notes_list_failed", err)
		return
	}

	c.JSON(http.StatusOK, h.listEnvelope(c, page, np))
}

// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body      createNoteRequest  true  "Note fields"
// @Success      201   {object}  models.Note
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /notes [post]
// @Security     BearerAuth
func (h *Handler) createNote(c *gin.Context) {
	var req createNoteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	note, err := h.services.Create(c.Request.Context(), principalID(c), service.CreateParams{
		Title:      req.Title,
		Content:    req.Content,
		IsArchived: req.IsArchived,
	})
	if err != nil {
		h.respondServiceError(c, "notes_create_failed", err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// @Summary      Fetch a note
// @Tags         notes
// @Produce      json
// @Param        id   path      int  true  "Note id"
// @Success      200  {object}  models.Note
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [get]
// @Security     BearerAuth
func (h *Handler) getNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	note, err := h.services.Get(c.Request.Context(), principalID(c), id)
	if err != nil {
		h.respondServiceError(c, "notes_get_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, note)
}

// @Summary      Update a note
// @Description  Partial update; omitted fields are left unchanged. PUT and
// @Description  PATCH behave identically.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Note id"
// @Param        body  body      updateNoteRequest  true  "Fields to change"
// @Success      200   {object}  models.Note
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notes/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	var req updateNoteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	note, err := h.services.Update(c.Request.Context(), principalID(c), id, service.UpdateParams{
		Title:      req.Title,
		Content:    req.Content,
		IsArchived: req.IsArchived,
	})
	if err != nil {
		h.respondServiceError(c, "notes_update_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, note)
}

// @Summary      Delete a note
// @Tags         notes
// @Param        id  path  int  true  "Note id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), principalID(c), id); err != nil {
		h.respondServiceError(c, "notes_delete_failed", err, "id", id)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      Archive a note
// @Description  Idempotent: archiving an archived note succeeds.
// @Tags         notes
// @Produce      json
// @Param        id   path      int  true  "Note id"
// @Success      200  {object}  models.Note
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id}/archive [post]
// @Security     BearerAuth
func (h *Handler) archiveNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	note, err := h.services.Archive(c.Request.Context(), principalID(c), id)
	if err != nil {
		h.respondServiceError(c, "notes_archive_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, note)
}

// @Summary      Unarchive a note
// @Tags         notes
// @Produce      json
// @Param        id   path      int  true  "Note id"
// @Success      200  {object}  models.Note
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id}/unarchive [post]
// @Security     BearerAuth
func (h *Handler) unarchiveNote(c *gin.Context) {
	id, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	note, err := h.services.Unarchive(c.Request.Context(), principalID(c), id)
	if err != nil {
		h.respondServiceError(c, "notes_unarchive_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, note)
}
