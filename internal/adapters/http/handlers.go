package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/infrastructure/storage"
	"svw.info/sokoban/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/levels/:n", h.handleLevel)
	api.GET("/levels/:n/state", h.handleState)
	api.POST("/generate", h.handleGenerate)
	api.POST("/check", h.handleCheck)
	api.POST("/save", h.handleSave)
	api.GET("/load/:key", h.handleLoad)
	api.GET("/list", h.handleList)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RequestLogger logs method, path, status, bytes and duration.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func levelParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "level must be a positive integer", Code: "INVALID_LEVEL"})
		return 0, false
	}
	return n, true
}

// ---- Levels ----

type levelResp struct {
	Layout     *domain.Layout `json:"layout"`
	Attempts   int            `json:"attempts"`
	Accepted   bool           `json:"accepted"`
	DurationMs int64          `json:"durationMs"`
}

func (h *Handler) handleLevel(c *gin.Context) {
	n, ok := levelParam(c)
	if !ok {
		return
	}
	l, st, err := h.UC.Level(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LEVEL_FAILED"})
		return
	}
	c.JSON(http.StatusOK, levelResp{
		Layout:     l,
		Attempts:   st.Attempts,
		Accepted:   st.Accepted,
		DurationMs: st.Duration.Milliseconds(),
	})
}

func (h *Handler) handleState(c *gin.Context) {
	n, ok := levelParam(c)
	if !ok {
		return
	}
	s, err := h.UC.Start(c.Request.Context(), n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LEVEL_FAILED"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// ---- Generate ----

type generateReq struct {
	Level      int   `json:"level"`
	Difficulty int   `json:"difficulty"`
	Seed       int64 `json:"seed,omitempty"`
}

type generateResp struct {
	Layout     *domain.Layout         `json:"layout"`
	Placement  domain.PlacementResult `json:"placement"`
	Attempts   int                    `json:"attempts"`
	Accepted   bool                   `json:"accepted"`
	DurationMs int64                  `json:"durationMs"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	if req.Level < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "level must be a positive integer", Code: "INVALID_LEVEL"})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d := domain.Difficulty(req.Difficulty).Clamp()
	l, st, err := h.UC.Generate(c.Request.Context(), seed, req.Level, d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "GENERATE_FAILED"})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Layout:     l,
		Placement:  st.Placement,
		Attempts:   st.Attempts,
		Accepted:   st.Accepted,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Check ----

type checkReq struct {
	Rows []string `json:"rows" binding:"required"`
}

func (h *Handler) handleCheck(c *gin.Context) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	l, err := domain.ParseLayout(0, 0, req.Rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "MALFORMED_LAYOUT"})
		return
	}
	v, err := h.UC.Check(c.Request.Context(), l)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "CHECK_FAILED"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// ---- Save / Load / List ----

type saveReq struct {
	Name   string         `json:"name,omitempty"`
	Layout *domain.Layout `json:"layout" binding:"required"`
}

type saveResp struct {
	Key string `json:"key"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	l, err := domain.ParseLayout(req.Layout.ID, req.Layout.Difficulty, req.Layout.Map)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "MALFORMED_LAYOUT"})
		return
	}
	l.Seed = req.Layout.Seed
	r, err := h.UC.Save(c.Request.Context(), l, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "SAVE_FAILED"})
		return
	}
	c.JSON(http.StatusOK, saveResp{Key: r.Key})
}

func (h *Handler) handleLoad(c *gin.Context) {
	r, err := h.UC.Load(c.Request.Context(), c.Param("key"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "NOT_FOUND"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LOAD_FAILED"})
		return
	}
	c.JSON(http.StatusOK, r)
}

type listResp struct {
	Records []domain.RecordMeta `json:"records"`
}

func (h *Handler) handleList(c *gin.Context) {
	rs, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LIST_FAILED"})
		return
	}
	if rs == nil {
		rs = []domain.RecordMeta{}
	}
	c.JSON(http.StatusOK, listResp{Records: rs})
}
