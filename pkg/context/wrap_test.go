package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"notalx/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testCtx(rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c, w
}

func TestGetPagination(t *testing.T) {
	c, _ := testCtx("page=3&page_size=25")
	p := GetPagination(c)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())

	// 非法值回落默认值
	c, _ = testCtx("page=0&page_size=-5")
	p = GetPagination(c)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)

	c, _ = testCtx("")
	p = GetPagination(c)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	// 超限截断
	c, _ = testCtx("page_size=1000")
	p = GetPagination(c)
	assert.Equal(t, 100, p.PageSize)
}

func TestWrapBizError(t *testing.T) {
	c, w := testCtx("")
	Wrap(func(*gin.Context) error {
		return response.NotFound("Note not found")
	})(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"err"`)
	assert.Contains(t, w.Body.String(), "Note not found")
}

func TestWrapPlainError(t *testing.T) {
	c, w := testCtx("")
	Wrap(func(*gin.Context) error {
		return errors.New("boom")
	})(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "boom")
}

func TestGetUserID(t *testing.T) {
	c, _ := testCtx("")
	_, err := GetUserID(c)
	assert.Error(t, err)

	c.Set(CtxUserID, int64(42))
	uid, err := GetUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}
