package testutil

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/shortlist/internal/app"
	"github.com/thenoetrevino/shortlist/internal/server"
)

// NewStoreServer serves the candidate store API over db until the test ends
func NewStoreServer(t *testing.T, db *sql.DB) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	application := app.New(db)
	srv := server.New("127.0.0.1:0", application.JobService, application.CandidateService)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}
