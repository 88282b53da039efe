// Package httpapi exposes grid generation, lookup, persistence, and
// dictionary queries over gin, narrowed from this lineage's multiplayer
// room/puzzle API down to the routes a grid generator actually needs.
package httpapi

import (
	"context"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wordgrid/engine/internal/filler"
	"github.com/wordgrid/engine/internal/middleware"
	"github.com/wordgrid/engine/internal/realtime"
	"github.com/wordgrid/engine/internal/store"
	"github.com/wordgrid/engine/pkg/dictionary"
	"github.com/wordgrid/engine/pkg/grid"
)

const (
	statusGenerating = "generating"
	statusComplete   = "complete"
	statusFailed     = "failed"

	patternCacheTTL = 10 * time.Minute
)

// session tracks one in-flight or completed generation, keyed by its id.
type session struct {
	mu     sync.RWMutex
	grid   *grid.Grid
	status string
}

// Handlers wires every route this API exposes. dict and dictGeneration back
// GET /dictionary/match; store and hub are optional (nil disables /save and
// /watch respectively) so the package is usable in tests without either
// live dependency.
type Handlers struct {
	store          *store.Store
	hub            *realtime.Hub
	dict           *dictionary.Dictionary
	dictGeneration int

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewHandlers wires a Handlers value. Bearer-token validation lives entirely
// in the middleware.AuthMiddleware passed to RegisterRoutes — Handlers
// itself never inspects a token, only the claims RequireAuth already set on
// the request context (see SaveGrid).
func NewHandlers(st *store.Store, hub *realtime.Hub, dict *dictionary.Dictionary, dictGeneration int) *Handlers {
	return &Handlers{
		store:          st,
		hub:            hub,
		dict:           dict,
		dictGeneration: dictGeneration,
		sessions:       make(map[string]*session),
	}
}

// RegisterRoutes attaches every handler this package defines to router.
func RegisterRoutes(router *gin.Engine, h *Handlers, authMiddleware *middleware.AuthMiddleware) {
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	grids := router.Group("/grids")
	{
		grids.POST("", h.CreateGrid)
		grids.GET("/:id", h.GetGrid)
		grids.GET("/:id/watch", h.WatchGrid)
		save := grids.Group("/:id/save")
		save.Use(authMiddleware.RequireAuth())
		save.POST("", h.SaveGrid)
	}

	router.GET("/dictionary/match", h.MatchDictionary)
}

// CreateGridRequest is the body of POST /grids.
type CreateGridRequest struct {
	Width      int      `json:"width" binding:"required,min=1,max=64"`
	Height     int      `json:"height" binding:"required,min=1,max=64"`
	Words      []string `json:"words" binding:"required,min=1"`
	Seed       *int64   `json:"seed"`
	MaxRetries int      `json:"maxRetries"`
}

// CreateGrid starts a generation run in the background and returns its
// session id immediately; callers watch progress over
// GET /grids/:id/watch or poll GET /grids/:id.
func (h *Handlers) CreateGrid(c *gin.Context) {
	var req CreateGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	dict := dictionary.New(req.Words, 3, rng)
	g := grid.New(req.Width, req.Height)
	slots := g.RowAndColumnSlots()

	id := uuid.New().String()
	sess := &session{grid: g, status: statusGenerating}
	h.mu.Lock()
	h.sessions[id] = sess
	h.mu.Unlock()

	go h.runFill(id, sess, dict, slots, rng, req.MaxRetries)

	c.JSON(http.StatusAccepted, gin.H{
		"id":     id,
		"width":  req.Width,
		"height": req.Height,
		"status": statusGenerating,
	})
}

func (h *Handlers) runFill(id string, sess *session, dict *dictionary.Dictionary, slots []filler.Slot, rng *rand.Rand, maxRetries int) {
	seq := 0
	config := filler.Config{
		MaxRetries: maxRetries,
		OnStep: func(g *grid.Grid) {
			seq = h.broadcastGridState(id, g, seq, false)
		},
	}

	sess.mu.Lock()
	err := filler.Fill(sess.grid, dict, slots, rng, config)
	if err != nil {
		sess.status = statusFailed
	} else {
		sess.status = statusComplete
	}
	finalGrid := sess.grid
	sess.mu.Unlock()

	h.broadcastGridState(id, finalGrid, seq, true)
}

// broadcastGridState fans out g's full print-event stream as a batch of
// sequenced realtime.Events, returning the updated sequence counter.
func (h *Handlers) broadcastGridState(id string, g *grid.Grid, seq int, done bool) int {
	if h.hub == nil {
		return seq
	}
	for ev := range g.PrintEvents(grid.Solution) {
		seq++
		h.hub.Broadcast(id, realtime.Event{Seq: seq, Grid: ev})
	}
	if done {
		seq++
		h.hub.Broadcast(id, realtime.Event{Seq: seq, Done: true})
	}
	return seq
}

// GetGrid returns the current snapshot and status of a generation session.
func (h *Handlers) GetGrid(c *gin.Context) {
	sess := h.lookupSession(c)
	if sess == nil {
		return
	}

	sess.mu.RLock()
	defer sess.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{
		"id":     c.Param("id"),
		"status": sess.status,
		"grid":   sess.grid.Snapshot(),
	})
}

// WatchGrid upgrades to a websocket and streams sess's print-event feed as
// it is produced.
func (h *Handlers) WatchGrid(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "realtime hub not configured"})
		return
	}
	if h.lookupSession(c) == nil {
		return
	}

	if err := h.hub.Serve(c.Writer, c.Request, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to upgrade websocket"})
	}
}

// SaveGrid persists a completed session's grid via internal/store and
// requires a valid bearer token (wired in RegisterRoutes).
func (h *Handlers) SaveGrid(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
		return
	}

	sess := h.lookupSession(c)
	if sess == nil {
		return
	}

	sess.mu.RLock()
	status := sess.status
	g := sess.grid
	sess.mu.RUnlock()

	if status != statusComplete {
		c.JSON(http.StatusConflict, gin.H{"error": "grid is not in a complete state"})
		return
	}

	savedID, err := h.store.SaveGrid(g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save grid"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"savedId": savedID,
		"savedBy": middleware.GetAuthUser(c).Subject,
	})
}

// MatchDictionary queries the server's default dictionary with a pattern
// (# as wildcard), optionally serving/populating a Redis cache via
// internal/store.
func (h *Handlers) MatchDictionary(c *gin.Context) {
	if h.dict == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dictionary not configured"})
		return
	}

	pattern := c.Query("pattern")
	if pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern query parameter is required"})
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	ctx := c.Request.Context()
	if h.store != nil {
		if cached, ok, err := h.store.CachedPattern(ctx, pattern, h.dictGeneration); err == nil && ok {
			c.JSON(http.StatusOK, gin.H{"pattern": pattern, "words": cached, "cached": true})
			return
		}
	}

	words := make([]string, 0, limit)
	h.dict.MatchingWords([]rune(pattern))(func(w []rune) bool {
		words = append(words, string(w))
		return len(words) < limit
	})

	if h.store != nil {
		_ = h.store.CachePattern(context.Background(), pattern, h.dictGeneration, words, patternCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{"pattern": pattern, "words": words, "cached": false})
}

// lookupSession fetches the session named by the :id path param, writing a
// 404 response and returning nil if it does not exist.
func (h *Handlers) lookupSession(c *gin.Context) *session {
	id := c.Param("id")
	h.mu.RLock()
	sess, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "grid session not found"})
		return nil
	}
	return sess
}
