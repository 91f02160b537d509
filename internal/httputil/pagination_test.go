package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cryptobox/internal/httputil"
)

func paginationContext(t *testing.T, url string) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	c.Request = req

	return c
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults", func(t *testing.T) {
		offset, limit, err := httputil.ParsePagination(paginationContext(t, "/v1/transit/keys"))

		require.NoError(t, err)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 50, limit)
	})

	t.Run("explicit window", func(t *testing.T) {
		offset, limit, err := httputil.ParsePagination(paginationContext(t, "/v1/transit/keys?offset=10&limit=100"))

		require.NoError(t, err)
		assert.Equal(t, 10, offset)
		assert.Equal(t, 100, limit)
	})

	rejected := []struct {
		name    string
		query   string
		wantErr string
	}{
		{"negative offset", "offset=-1", "invalid offset parameter: must be a non-negative integer"},
		{"non-numeric offset", "offset=abc", "invalid offset parameter: must be a non-negative integer"},
		{"zero limit", "limit=0", "invalid limit parameter: must be between 1 and 100"},
		{"limit above cap", "limit=101", "invalid limit parameter: must be between 1 and 100"},
		{"non-numeric limit", "limit=xyz", "invalid limit parameter: must be between 1 and 100"},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit, err := httputil.ParsePagination(paginationContext(t, "/v1/transit/keys?"+tt.query))

			require.EqualError(t, err, tt.wantErr)
			assert.Zero(t, offset)
			assert.Zero(t, limit)
		})
	}
}
