package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/darshoned/DfMA/internal/catalog"
	"github.com/darshoned/DfMA/internal/planner"
)

const allCIS = `{"name":"car park","s1":8,"s2":4,"live_load":3,"length":60,"width":30,
"column":"CIS Column","beam":"CIS Beam","slab":"CIS Slab"}`

func router(t *testing.T, opts Options) http.Handler {
	t.Helper()
	e, err := planner.Open(planner.Sources{})
	require.NoError(t, err)
	return NewRouter(e, opts)
}

func do(h http.Handler, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(router(t, Options{}), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"ok","profile":"baseline"}`, rec.Body.String())
}

func TestGenerate(t *testing.T) {
	rec := do(router(t, Options{}), http.MethodPost, "/api/generate", "application/json", []byte(allCIS))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res planner.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "car park", res.Input.Name)
	assert.EqualValues(t, 64, res.Input.Length)
	assert.EqualValues(t, 500, res.Column.Size)
	assert.Equal(t, 2, res.Quantities.TowerCranes)
	assert.Len(t, res.Outputs.All, 42)
}

func TestGenerateDocuments(t *testing.T) {
	h := router(t, Options{})

	rec := do(h, http.MethodPost, "/api/generate?format=pdf", "application/json", []byte(allCIS))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = do(h, http.MethodPost, "/api/generate?format=xlsx", "application/json", []byte(allCIS))
	require.Equal(t, http.StatusOK, rec.Code)
	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestGenerateErrors(t *testing.T) {
	h := router(t, Options{})
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"s1":`, http.StatusBadRequest},
		{"unknown field", `{"span":8}`, http.StatusBadRequest},
		{"negative span", `{"s1":-8,"s2":4,"live_load":3,"length":60,"width":30,"column":"CIS Column","beam":"CIS Beam","slab":"CIS Slab"}`, http.StatusBadRequest},
		{"unsupported combination", `{"s1":8,"s2":4,"live_load":3,"length":60,"width":30,"column":"CIS Column","beam":"PT Flat Slab","slab":"CIS Slab"}`, http.StatusBadRequest},
		{"no hollow-core product", `{"s1":40,"s2":6,"live_load":3,"length":80,"width":36,"column":"CIS Column","beam":"CIS Beam","slab":"2.4HC Slab"}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/api/generate", "application/json", []byte(tt.body))
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	rec := do(router(t, Options{}), http.MethodGet, "/api/generate", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBatchJSON(t *testing.T) {
	bad := strings.Replace(allCIS, `"s1":8`, `"s1":0`, 1)
	body := "[" + allCIS + "," + bad + "]"
	rec := do(router(t, Options{Workers: 2}), http.MethodPost, "/api/batch", "application/json", []byte(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var items []planner.BatchItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.NotNil(t, items[0].Result)
	assert.Empty(t, items[0].Err)
	assert.Nil(t, items[1].Result)
	assert.Contains(t, items[1].Err, "s1")
}

func TestBatchEmpty(t *testing.T) {
	rec := do(router(t, Options{}), http.MethodPost, "/api/batch", "application/json", []byte("[]"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func scenarioWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	rows := [][]any{
		{"name", "s1", "s2", "live_load", "length", "width", "column", "beam", "slab"},
		{"a", 8, 4, 3, 60, 30, "CIS Column", "CIS Beam", "CIS Slab"},
		{"b", 8, 8, 3, 40, 24, "CIS Column", "PT Flat Slab", "PT Flat Slab"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestBatchWorkbookUpload(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "scenarios.xlsx")
	require.NoError(t, err)
	_, err = part.Write(scenarioWorkbook(t))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := do(router(t, Options{}), http.MethodPost, "/api/batch?format=xlsx", mw.FormDataContentType(), body.Bytes())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[1][1])
	assert.Equal(t, "ok", rows[2][5])
}

func TestCatalogAndProfiles(t *testing.T) {
	h := router(t, Options{})

	rec := do(h, http.MethodGet, "/api/catalog/hollowcore", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.NotEmpty(t, products)

	rec = do(h, http.MethodGet, "/api/catalog/productivity", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rates []catalog.Rate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rates))
	assert.Len(t, rates, 9)

	rec = do(h, http.MethodGet, "/api/profiles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profiles struct {
		Active struct {
			Name string `json:"name"`
		} `json:"active"`
		Builtin []string `json:"builtin"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
	assert.Equal(t, "baseline", profiles.Active.Name)
	assert.Equal(t, []string{"baseline", "revised"}, profiles.Builtin)
}

func TestRateLimit(t *testing.T) {
	h := router(t, Options{RateLimit: 1, RateBurst: 2})

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = do(h, http.MethodGet, "/api/profiles", "", nil).Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// health checks bypass the limiter
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "", nil).Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))
	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientIP(req))
}
