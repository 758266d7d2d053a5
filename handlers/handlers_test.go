package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flashdeck/flashdeck-api/models"
)

func newTestAPI(t *testing.T) *http.ServeMux {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Set{}, &models.Card{}, &models.UserSet{}, &models.Learning{}))
	return Router(New(db))
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createSet(t *testing.T, mux *http.ServeMux, title string, private bool) map[string]any {
	t.Helper()
	rec := doJSON(t, mux, http.MethodPost, "/sets", map[string]any{
		"title":   title,
		"creator": "user-1",
		"private": private,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[map[string]any](t, rec)
}

func TestListSetsNeverReturnsPrivate(t *testing.T) {
	mux := newTestAPI(t)
	createSet(t, mux, "Open", false)
	createSet(t, mux, "Hidden", true)

	rec := doJSON(t, mux, http.MethodGet, "/sets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	sets := decodeBody[[]map[string]any](t, rec)
	require.Len(t, sets, 1)
	assert.Equal(t, "Open", sets[0]["title"])
	assert.Equal(t, false, sets[0]["private"])
}

func TestGetSetNotFoundIsExplicit(t *testing.T) {
	mux := newTestAPI(t)

	rec := doJSON(t, mux, http.MethodGet, "/sets/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	assert.Contains(t, body["error"], "not found")
}

func TestCreateSetValidation(t *testing.T) {
	mux := newTestAPI(t)

	rec := doJSON(t, mux, http.MethodPost, "/sets", map[string]any{"creator": "user-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/sets", map[string]any{
		"title":   "Bad image",
		"creator": "user-1",
		"image":   "not-base64!!!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCardIncrementsCount(t *testing.T) {
	mux := newTestAPI(t)
	set := createSet(t, mux, "Counted", false)
	setID := set["id"].(string)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, mux, http.MethodPost, "/cards", map[string]any{
			"set":      setID,
			"question": fmt.Sprintf("q%d", i),
			"answer":   fmt.Sprintf("a%d", i),
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, mux, http.MethodGet, "/sets/"+setID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 3, got["card_count"])

	rec = doJSON(t, mux, http.MethodGet, "/cards?setid="+setID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cards := decodeBody[[]map[string]any](t, rec)
	assert.Len(t, cards, 3)
}

func TestDeleteSetCascadesFavorites(t *testing.T) {
	mux := newTestAPI(t)
	set := createSet(t, mux, "Favorited", false)
	setID := set["id"].(string)

	rec := doJSON(t, mux, http.MethodPost, "/usersets", map[string]any{"user": "alice", "set": setID})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, "/sets/"+setID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[map[string]bool](t, rec)["success"])

	rec = doJSON(t, mux, http.MethodGet, "/usersets?user=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]map[string]any](t, rec))
}

func TestLearnRouteShape(t *testing.T) {
	mux := newTestAPI(t)
	set := createSet(t, mux, "Study", false)
	setID := set["id"].(string)

	for i := 0; i < 5; i++ {
		rec := doJSON(t, mux, http.MethodPost, "/cards", map[string]any{
			"set":      setID,
			"question": fmt.Sprintf("q%d", i),
			"answer":   fmt.Sprintf("a%d", i),
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, mux, http.MethodGet, "/cards/learn?setid="+setID+"&limit=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	session := decodeBody[[]map[string]any](t, rec)
	require.Len(t, session, 3)
	seen := map[string]bool{}
	for _, card := range session {
		q := card["question"].(string)
		assert.False(t, seen[q], "question repeated in session")
		seen[q] = true
		assert.NotEmpty(t, card["answer"])
		// The session projection never leaks set metadata or record ids.
		assert.NotContains(t, card, "id")
		assert.NotContains(t, card, "set")
	}

	rec = doJSON(t, mux, http.MethodGet, "/cards/learn?setid="+setID+"&limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/cards/learn?setid=missing&limit=2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordLearningRoundTrip(t *testing.T) {
	mux := newTestAPI(t)
	set := createSet(t, mux, "Scored", false)
	setID := set["id"].(string)

	rec := doJSON(t, mux, http.MethodPost, "/learnings", map[string]any{
		"user":       "alice",
		"set":        setID,
		"cardsTotal": 10,
		"correct":    7,
		"wrong":      3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 70, created["score"])

	rec = doJSON(t, mux, http.MethodPost, "/learnings", map[string]any{
		"user":       "alice",
		"set":        setID,
		"cardsTotal": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/learnings?user=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeBody[[]map[string]any](t, rec)
	require.Len(t, history, 1)
	setProjection, ok := history[0]["set"].(map[string]any)
	require.True(t, ok, "history entry missing set projection")
	assert.Equal(t, "Scored", setProjection["title"])
}

func TestImageRoundTrip(t *testing.T) {
	mux := newTestAPI(t)

	pixel := []byte{0x89, 0x50, 0x4e, 0x47}
	rec := doJSON(t, mux, http.MethodPost, "/sets", map[string]any{
		"title":   "Pictured",
		"creator": "user-1",
		"image":   base64.StdEncoding.EncodeToString(pixel),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	setID := decodeBody[map[string]any](t, rec)["id"].(string)

	rec = doJSON(t, mux, http.MethodGet, "/sets/"+setID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "/sets/"+setID+"/image", got["image"])

	req := httptest.NewRequest(http.MethodGet, "/sets/"+setID+"/image", nil)
	imgRec := httptest.NewRecorder()
	mux.ServeHTTP(imgRec, req)
	require.Equal(t, http.StatusOK, imgRec.Code)
	assert.Equal(t, "image/png", imgRec.Header().Get("Content-Type"))
	assert.Equal(t, pixel, imgRec.Body.Bytes())
}

func TestSeedRoute(t *testing.T) {
	mux := newTestAPI(t)

	rec := doJSON(t, mux, http.MethodGet, "/init", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[map[string]bool](t, rec)["result"])

	rec = doJSON(t, mux, http.MethodGet, "/sets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sets := decodeBody[[]map[string]any](t, rec)
	require.Len(t, sets, 2)
	for _, set := range sets {
		assert.NotZero(t, set["card_count"])
	}
}

func TestMissingQueryParamsRejected(t *testing.T) {
	mux := newTestAPI(t)

	for _, target := range []string{"/cards", "/usersets", "/learnings", "/cards/learn"} {
		rec := doJSON(t, mux, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
