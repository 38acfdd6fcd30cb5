package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/sensitivewords/internal/common"
	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) sanitize(c *gin.Context) {
	var req sanitizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := s.deps.Sanitize.Sanitize(c.Request.Context(), req.Message)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.record(c, models.OperationSanitize, models.ResourceMessage)

	c.JSON(http.StatusOK, sanitizeResponse{
		OriginalMessage:  res.Original,
		SanitizedMessage: res.Sanitized,
		WordsReplaced:    res.Replaced,
	})
}

func (s *Server) listWords(c *gin.Context) {
	activeOnly := false
	if v := c.Query("activeOnly"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(c, fmt.Errorf("activeOnly: %w", err))
			return
		}
		activeOnly = b
	}

	ws, err := s.deps.Words.List(c.Request.Context(), activeOnly)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.record(c, models.OperationRead, models.ResourceSensitiveWord)

	out := make([]wordResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, toWordResponse(w))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getWord(c *gin.Context) {
	w, err := s.deps.Words.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.record(c, models.OperationRead, models.ResourceSensitiveWord)
	c.JSON(http.StatusOK, toWordResponse(w))
}

func (s *Server) createWord(c *gin.Context) {
	var req createWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	w, err := s.deps.Words.Create(c.Request.Context(), req.Word)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.record(c, models.OperationCreate, models.ResourceSensitiveWord)

	c.Header("Location", "/api/sensitivewords/"+w.ID)
	c.JSON(http.StatusCreated, gin.H{"id": w.ID})
}

func (s *Server) updateWord(c *gin.Context) {
	var req updateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Word == nil && req.IsActive == nil {
		s.writeError(c, fmt.Errorf("%w: word or isActive is required", common.ErrValidation))
		return
	}

	if err := s.deps.Words.Update(c.Request.Context(), c.Param("id"), req.Word, req.IsActive); err != nil {
		s.writeError(c, err)
		return
	}
	s.record(c, models.OperationUpdate, models.ResourceSensitiveWord)
	c.Status(http.StatusNoContent)
}

func (s *Server) setActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.deps.Words.SetActive(c.Request.Context(), c.Param("id"), active); err != nil {
			s.writeError(c, err)
			return
		}
		s.record(c, models.OperationUpdate, models.ResourceSensitiveWord)
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) deleteWord(c *gin.Context) {
	if err := s.deps.Words.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	s.record(c, models.OperationDelete, models.ResourceSensitiveWord)
	c.Status(http.StatusNoContent)
}

func (s *Server) bulkImport(c *gin.Context) {
	var req bulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	n, err := s.deps.Words.BulkImport(c.Request.Context(), req.Words)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.record(c, models.OperationCreate, models.ResourceSensitiveWord)
	c.JSON(http.StatusOK, gin.H{"inserted": n})
}

func (s *Server) listStats(c *gin.Context) {
	st, err := s.deps.Stats.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStatResponses(st))
}

func (s *Server) statsByType(c *gin.Context) {
	st, err := s.deps.Stats.ListByType(c.Request.Context(), c.Param("operationType"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStatResponses(st))
}

func (s *Server) resetStats(c *gin.Context) {
	if err := s.deps.Stats.Reset(c.Request.Context()); err != nil {
		s.writeError(c, err)
		return
	}
	s.log.Warn(c.Request.Context(), "operation statistics reset")
	c.JSON(http.StatusOK, gin.H{"message": "all operation statistics have been reset to zero"})
}

func (s *Server) healthHandler(tags ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep := s.deps.Health.Run(c.Request.Context(), tags...)
		status := http.StatusOK
		if !rep.Healthy() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, rep)
	}
}

func (s *Server) metrics(c *gin.Context) {
	m, err := s.deps.Metrics.Sample(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
