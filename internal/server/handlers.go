package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/services/candidate"
	"github.com/thenoetrevino/shortlist/internal/services/job"
)

// Handler serves the jobs and candidates API
type Handler struct {
	jobs       job.Service
	candidates candidate.Service
	metrics    *Metrics
}

// NewHandler creates a new Handler
func NewHandler(jobs job.Service, candidates candidate.Service, metrics *Metrics) *Handler {
	return &Handler{
		jobs:       jobs,
		candidates: candidates,
		metrics:    metrics,
	}
}

// ListJobs returns every job
// GET /api/jobs
func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": jobs})
}

// GetJob returns a specific job
// GET /api/jobs/:jobId
func (h *Handler) GetJob(c *gin.Context) {
	jobID, ok := intParam(c, "jobId")
	if !ok {
		return
	}

	j, err := h.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": j})
}

// ListCandidates returns the candidates of a job
// GET /api/jobs/:jobId/candidates
func (h *Handler) ListCandidates(c *gin.Context) {
	jobID, ok := intParam(c, "jobId")
	if !ok {
		return
	}

	candidates, err := h.candidates.ListCandidates(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": candidates})
}

// UpdateCandidate persists a move of one candidate
// PATCH /api/jobs/:jobId/candidates/:candidateId
func (h *Handler) UpdateCandidate(c *gin.Context) {
	jobID, ok := intParam(c, "jobId")
	if !ok {
		h.metrics.IncMovesRejected()
		return
	}
	candidateID, ok := intParam(c, "candidateId")
	if !ok {
		h.metrics.IncMovesRejected()
		return
	}

	var body models.CandidateUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.metrics.IncMovesRejected()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	stored, err := h.candidates.MoveCandidate(c.Request.Context(), candidate.MoveCandidateRequest{
		JobID:       jobID,
		CandidateID: candidateID,
		Candidate:   body.Candidate,
	})
	if err != nil {
		h.metrics.IncMovesRejected()
		writeError(c, err)
		return
	}

	h.metrics.IncMoves()
	c.JSON(http.StatusOK, gin.H{"data": stored})
}

// Health reports liveness
// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Metrics returns the metrics snapshot
// GET /api/metrics
func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetSnapshot())
}

// intParam parses a positive integer path parameter, answering 400 otherwise
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

// writeError maps service errors to status codes
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, job.ErrJobNotFound),
		errors.Is(err, candidate.ErrJobNotFound),
		errors.Is(err, candidate.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, job.ErrInvalidJobID),
		errors.Is(err, candidate.ErrInvalidJobID),
		errors.Is(err, candidate.ErrInvalidCandidateID),
		errors.Is(err, candidate.ErrInvalidStatus),
		errors.Is(err, candidate.ErrInvalidPosition),
		errors.Is(err, candidate.ErrIDMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
