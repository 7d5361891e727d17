package devserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arviewer/internal/assets"
	"arviewer/internal/devserver"
	"arviewer/internal/services/localization"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}
	return dir
}

func newServer(t *testing.T, dir string, logs io.Writer) *httptest.Server {
	t.Helper()
	if logs == nil {
		logs = io.Discard
	}
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	srv := httptest.NewServer(devserver.New(dir, logger).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

var tree = map[string]string{
	"assetLinks.json":               `{"chair42":{"arButtonsUrl":"chair42/models.json"}}`,
	"GoogleSheetsLocalization.json": `{"sheetKey":"dev","sheetName":"Texts","codeGsUrl":"localization"}`,
	"applicationTextOptions.json":   `{"error":"Error","byButton":"Order","textArButtons1":"Model 1"}`,
	"localization/ua.json":          `{"error":"Помилка","byButton":"Купити","textArButtons1":"Дуб","unused":"x"}`,
	"localization/broken.json":      `{`,
}

func TestHealthz(t *testing.T) {
	srv := newServer(t, writeTree(t, tree), nil)

	code, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK\n", body)
}

func TestServesFiles(t *testing.T) {
	srv := newServer(t, writeTree(t, tree), nil)

	code, body := get(t, srv.URL+"/assetLinks.json")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, tree["assetLinks.json"], body)

	code, _ = get(t, srv.URL+"/chair42/missing.glb")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLocalization_RequestedKeysOnly(t *testing.T) {
	srv := newServer(t, writeTree(t, tree), nil)

	code, body := get(t, srv.URL+"/localization?sheetKey=dev&sheetName=Texts&lang=ua&error=Error&textArButtons1=Model+1&missing=1")
	require.Equal(t, http.StatusOK, code)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, map[string]string{"error": "Помилка", "textArButtons1": "Дуб"}, got)
}

func TestLocalization_Errors(t *testing.T) {
	srv := newServer(t, writeTree(t, tree), nil)

	code, _ := get(t, srv.URL+"/localization?lang=en")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, srv.URL+"/localization?lang=../ua")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = get(t, srv.URL+"/localization?lang=broken")
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestAccessLog(t *testing.T) {
	var logs bytes.Buffer
	srv := newServer(t, writeTree(t, tree), &logs)

	get(t, srv.URL+"/nope.json")

	var line map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
	assert.Equal(t, "request", line["msg"])
	assert.Equal(t, "/nope.json", line["path"])
	assert.EqualValues(t, http.StatusNotFound, line["status"])
}

func TestLocalizationServiceAgainstDevServer(t *testing.T) {
	srv := newServer(t, writeTree(t, tree), nil)
	fetch, err := assets.NewHTTP(srv.URL+"/", srv.Client(), nil)
	require.NoError(t, err)
	svc := localization.New(fetch, time.Second, nil)

	b, ok := svc.Resolve(context.Background(), 1, "ua")
	require.True(t, ok)
	assert.Equal(t, "Дуб", b.Text("textArButtons1", ""))
	assert.Equal(t, "Купити", b.Text("byButton", ""))
	assert.NotContains(t, b, "unused")

	_, ok = svc.Resolve(context.Background(), 1, "en")
	assert.False(t, ok)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ARVIEWER_ASSET_DIR", "/srv/assets")
	t.Setenv("ARVIEWER_ADDR", ":9090")

	cfg, err := devserver.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, devserver.Config{AssetDir: "/srv/assets", Addr: ":9090"}, cfg)
}
