package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/session"
	"resumeforge/internal/storage"
	"resumeforge/pkg/models"
)

func newTestContext(t *testing.T, method, body string, paramNames, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	return c, rec
}

func decodeRecord(t *testing.T, rec *httptest.ResponseRecorder) models.RecordResponse {
	t.Helper()
	var resp models.RecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetResumeReturnsStarterRecord(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	c, rec := newTestContext(t, http.MethodGet, "", []string{"id"}, []string{"abc"})

	require.NoError(t, GetResumeHandler(sessions)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeRecord(t, rec)
	assert.Equal(t, "Alex Morgan", resp.Resume.FullName)
	assert.NotEmpty(t, resp.RequestID)
}

func TestSetFieldHandler(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodPost,
		`{"field": "fullName", "value": "Taylor Reyes"}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, SetFieldHandler(sessions)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Taylor Reyes", decodeRecord(t, rec).Resume.FullName)

	// The change persists across handlers
	record, err := sessions.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Taylor Reyes", record.FullName)
}

func TestSetFieldHandlerUnknownField(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodPost,
		`{"field": "favoriteColor", "value": "blue"}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, SetFieldHandler(sessions)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unknown_field", resp.Error)
}

func TestAddAndRemoveItem(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	baseline := len(models.DefaultResume().Skills)

	c, rec := newTestContext(t, http.MethodPost,
		`{"list": "skills", "item": {"name": "Terraform", "level": "Intermediate"}}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, AddItemHandler(sessions)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeRecord(t, rec)
	require.Len(t, resp.Resume.Skills, baseline+1)
	added := resp.Resume.Skills[baseline]
	assert.Equal(t, "Terraform", added.Name)
	assert.NotEmpty(t, added.ID, "missing id gets generated")

	c, rec = newTestContext(t, http.MethodDelete, "",
		[]string{"id", "list", "itemID"}, []string{"abc", "skills", added.ID})
	require.NoError(t, RemoveItemHandler(sessions)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRecord(t, rec).Resume.Skills, baseline)

	// Deleting again is a no-op
	c, rec = newTestContext(t, http.MethodDelete, "",
		[]string{"id", "list", "itemID"}, []string{"abc", "skills", added.ID})
	require.NoError(t, RemoveItemHandler(sessions)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRecord(t, rec).Resume.Skills, baseline)
}

func TestUpdateItemHandler(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodPost,
		`{"field": "company", "value": "Initech"}`,
		[]string{"id", "list", "index"}, []string{"abc", "experience", "0"})
	require.NoError(t, UpdateItemHandler(sessions)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Initech", decodeRecord(t, rec).Resume.Experience[0].Company)
}

func TestUpdateItemHandlerOutOfRange(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodPost,
		`{"field": "company", "value": "Initech"}`,
		[]string{"id", "list", "index"}, []string{"abc", "experience", "99"})
	require.NoError(t, UpdateItemHandler(sessions)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItemHandlerBadIndex(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodPost,
		`{"field": "company", "value": "Initech"}`,
		[]string{"id", "list", "index"}, []string{"abc", "experience", "-1"})
	require.NoError(t, UpdateItemHandler(sessions)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderHandler(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodGet, "", []string{"id"}, []string{"abc"})
	c.Request().URL.RawQuery = "template=minimalist"
	require.NoError(t, RenderHandler(sessions)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RenderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "minimalist", resp.Template)
	require.NotNil(t, resp.Document)
	assert.Equal(t, "document", string(resp.Document.Role))
}

func TestRenderHandlerUnknownTemplate(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodGet, "", []string{"id"}, []string{"abc"})
	c.Request().URL.RawQuery = "template=brutalist"
	require.NoError(t, RenderHandler(sessions)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutResumeHandler(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())

	c, rec := newTestContext(t, http.MethodPut,
		`{"fullName": "Imported Person", "skills": [{"id": "s1", "name": "Rust", "level": "Beginner"}]}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, PutResumeHandler(sessions)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeRecord(t, rec)
	assert.Equal(t, "Imported Person", resp.Resume.FullName)
	require.Len(t, resp.Resume.Skills, 1)
	assert.Equal(t, "Rust", resp.Resume.Skills[0].Name)
}
