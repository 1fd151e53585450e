// Package httpapi exposes the store and the assistant over HTTP.
package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chris/zendo/internal/assistant"
	"github.com/chris/zendo/internal/store"
)

// upcomingLimit is how many events the dashboard shows.
const upcomingLimit = 3

type Handler struct {
	store     *store.Store
	assistant *assistant.Assistant
}

func NewHandler(st *store.Store, a *assistant.Assistant) *Handler {
	return &Handler{store: st, assistant: a}
}

// GET /api/state
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// POST /api/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var req struct {
		Title       string         `json:"title" binding:"required"`
		Description string         `json:"description"`
		Priority    store.Priority `json:"priority"` // low|medium|high
		Category    string         `json:"category"` // category id
		DueDate     string         `json:"dueDate"`  // YYYY-MM-DD
		Tags        []string       `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[http][tasks][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.store.AddTask(store.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
	})
	if err != nil {
		respondStoreError(c, "tasks", err)
		return
	}
	log.Printf("[http][tasks][ok] id=%s title=%q", t.ID, t.Title)
	c.JSON(http.StatusCreated, t)
}

// POST /api/tasks/:id/toggle
func (h *Handler) ToggleTask(c *gin.Context) {
	id := c.Param("id")
	t, ok := h.store.ToggleTask(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/events
func (h *Handler) CreateEvent(c *gin.Context) {
	var req struct {
		Title       string   `json:"title" binding:"required"`
		Date        string   `json:"date" binding:"required"`
		Time        string   `json:"time" binding:"required"`
		Location    string   `json:"location"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
		Color       string   `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[http][events][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.store.AddEvent(store.EventInput{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Tags:        req.Tags,
		Color:       req.Color,
	})
	if err != nil {
		respondStoreError(c, "events", err)
		return
	}
	log.Printf("[http][events][ok] id=%s title=%q", e.ID, e.Title)
	c.JSON(http.StatusCreated, e)
}

// POST /api/notes
func (h *Handler) CreateNote(c *gin.Context) {
	var req store.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[http][notes][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.store.AddNote(req)
	if err != nil {
		respondStoreError(c, "notes", err)
		return
	}
	log.Printf("[http][notes][ok] id=%s title=%q", n.ID, n.Title)
	c.JSON(http.StatusCreated, n)
}

// GET /api/notes?q=&tag=
func (h *Handler) ListNotes(c *gin.Context) {
	notes := h.store.FilterNotes(c.Query("q"), strings.ToLower(c.Query("tag")))
	if notes == nil {
		notes = []store.Note{}
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes, "tags": h.store.NoteTags()})
}

// POST /api/categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.store.AddCategory(req.Name)
	if err != nil {
		respondStoreError(c, "categories", err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// GET /api/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"progress": h.store.Progress(),
		"upcoming": h.store.UpcomingEvents(upcomingLimit),
	})
}

// GET /api/agenda?date=YYYY-MM-DD (defaults to today)
func (h *Handler) Agenda(c *gin.Context) {
	date := c.DefaultQuery("date", h.store.Today())
	if _, err := time.Parse(store.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date (YYYY-MM-DD)"})
		return
	}
	c.JSON(http.StatusOK, h.store.Agenda(date))
}

// GET /api/assistant/messages
func (h *Handler) Messages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": h.assistant.Session().Messages(),
		"state":    h.assistant.State().String(),
	})
}

// POST /api/assistant/messages
func (h *Handler) SendMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	res, ok := h.assistant.HandleUserInput(c.Request.Context(), req.Text)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "assistant is busy"})
		return
	}
	if res.Err != nil {
		log.Printf("[http][assistant][err] %v", res.Err)
		c.JSON(http.StatusBadGateway, gin.H{"reply": res.Reply, "actions": []assistant.Action{}})
		return
	}
	c.JSON(http.StatusOK, res)
}

func respondStoreError(c *gin.Context, tag string, err error) {
	log.Printf("[http][%s][err] %v", tag, err)
	switch {
	case errors.Is(err, store.ErrEmptyTitle),
		errors.Is(err, store.ErrEmptyNote),
		errors.Is(err, store.ErrEmptyName),
		errors.Is(err, store.ErrInvalidPriority),
		errors.Is(err, store.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
