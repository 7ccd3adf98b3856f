package food

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-service/internal/shared/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMux(t *testing.T, name string, up Uploader) *http.ServeMux {
	t.Helper()
	h := NewHandler(NewService(NewRepository(testDB(t, name)), up, allowedFormats))
	mux := http.NewServeMux()
	mux.Handle("POST /foods", httpx.Wrap(h.Create))
	mux.Handle("GET /foods", httpx.Wrap(h.List))
	return mux
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postForm(t *testing.T, mux *http.ServeMux, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/foods", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	mux.ServeHTTP(resp, req)
	return resp
}

func TestCreateFoodWithoutImageIs400(t *testing.T) {
	mux := testMux(t, "h_food_noimage", &fakeUploader{})

	body, ct := multipartBody(t, map[string]string{"title": "pancakes"}, "", "")
	resp := postForm(t, mux, body, ct)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var out struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Could not create post", out.Message)
	assert.Contains(t, out.Errors, "image")
}

func TestCreateFoodBadFormatIs400(t *testing.T) {
	mux := testMux(t, "h_food_badformat", &fakeUploader{})

	body, ct := multipartBody(t, map[string]string{"title": "pancakes"}, "image", "pancakes.gif")
	resp := postForm(t, mux, body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "unsupported image format")
}

func TestCreateFoodUploadFailureIs500(t *testing.T) {
	mux := testMux(t, "h_food_uploadfail", &fakeUploader{fail: true})

	body, ct := multipartBody(t, map[string]string{"title": "pancakes"}, "image", "pancakes.png")
	resp := postForm(t, mux, body, ct)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "Could not upload image")
}

func TestCreateFoodReturnsRecord(t *testing.T) {
	mux := testMux(t, "h_food_create", &fakeUploader{})

	body, ct := multipartBody(t, map[string]string{
		"title":        "pancakes",
		"url":          "https://example.com/pancakes",
		"description":  "fluffy",
		"type":         "breakfast",
		"restaurantId": "3",
	}, "image", "pancakes.png")
	resp := postForm(t, mux, body, ct)
	require.Equal(t, http.StatusOK, resp.Code)

	var f Food
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &f))
	assert.NotZero(t, f.ID)
	assert.Equal(t, "pancakes", f.Title)
	// the "url" form field maps onto link
	assert.Equal(t, "https://example.com/pancakes", f.Link)
	assert.NotEmpty(t, f.ImageURL)
	assert.NotEmpty(t, f.ImageID)
	require.NotNil(t, f.RestaurantID)
	assert.Equal(t, 3, *f.RestaurantID)
}

func TestListFoods(t *testing.T) {
	mux := testMux(t, "h_food_list", &fakeUploader{})

	resp := httptest.NewRecorder()
	mux.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/foods", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))

	body, ct := multipartBody(t, map[string]string{"title": "waffles"}, "image", "waffles.jpg")
	require.Equal(t, http.StatusOK, postForm(t, mux, body, ct).Code)

	resp = httptest.NewRecorder()
	mux.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/foods", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var items []Food
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "waffles", items[0].Title)
}
