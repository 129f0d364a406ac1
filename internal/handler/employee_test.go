package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?"+rawQuery, nil)
	return c
}

func TestParseListOptionsDefaults(t *testing.T) {
	opts, err := parseListOptions(listContext(t, ""))
	require.NoError(t, err)
	assert.Equal(t, int64(0), opts.Skip)
	assert.Equal(t, int64(defaultPageLimit), opts.Limit)
	assert.Empty(t, opts.Department)
}

func TestParseListOptionsValues(t *testing.T) {
	opts, err := parseListOptions(listContext(t, "department=HR&skip=10&limit=25"))
	require.NoError(t, err)
	assert.Equal(t, "HR", opts.Department)
	assert.Equal(t, int64(10), opts.Skip)
	assert.Equal(t, int64(25), opts.Limit)
}

func TestParseListOptionsClampsLimit(t *testing.T) {
	opts, err := parseListOptions(listContext(t, "limit=10000"))
	require.NoError(t, err)
	assert.Equal(t, int64(maxPageLimit), opts.Limit)
}

func TestParseListOptionsRejectsBadValues(t *testing.T) {
	for _, q := range []string{"skip=-1", "skip=abc", "limit=0", "limit=-5", "limit=abc"} {
		_, err := parseListOptions(listContext(t, q))
		assert.Error(t, err, "query %q should be rejected", q)
	}
}
