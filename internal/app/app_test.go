package app_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arviewer/internal/app"
	"arviewer/internal/domain"
	"arviewer/internal/scene"
	"arviewer/internal/xrsim"
)

// shop serves an asset tree and records every request path.
type shop struct {
	srv   *httptest.Server
	mu    sync.Mutex
	docs  map[string]string
	codes map[string]int
	hits  []string
}

const (
	modelList = `{"models":[
		{"label":"Oak","url":"chair42/oak.gltf"},
		{"label":"Pine","url":"chair42/pine.gltf"},
		{"label":"Steel","url":"chair42/steel.gltf"}
	]}`
	textOptions = `{"error":"Error","byButton":"Order","textArButtons1":true,"textArButtons2":true,"textArButtons3":true}`
	remoteTexts = `{"error":"Помилка","byButton":"Купити","textArButtons1":"Дуб","textArButtons2":"Сосна","textArButtons3":"Сталь"}`
)

func gltfDoc(name string) string {
	return fmt.Sprintf(`{"asset":{"version":"2.0"},"scenes":[{"name":%q,"nodes":[0]}],"nodes":[{}]}`, name)
}

func newShop(t *testing.T) *shop {
	t.Helper()
	s := &shop{codes: map[string]int{}}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	s.docs = map[string]string{
		"/assetLinks.json":               `{"chair42":{"arButtonsUrl":"chair42/models.json"}}`,
		"/chair42/models.json":           modelList,
		"/chair42/oak.gltf":              gltfDoc("Oak chair"),
		"/chair42/pine.gltf":             gltfDoc("Pine chair"),
		"/chair42/steel.gltf":            gltfDoc("Steel chair"),
		"/GoogleSheetsLocalization.json": `{"sheetKey":"k","sheetName":"Texts","codeGsUrl":"` + s.srv.URL + `/exec"}`,
		"/applicationTextOptions.json":   textOptions,
		"/exec":                          remoteTexts,
	}
	return s
}

func (s *shop) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits = append(s.hits, r.URL.Path)
	body, ok := s.docs[r.URL.Path]
	code := s.codes[r.URL.Path]
	s.mu.Unlock()

	if code != 0 {
		http.Error(w, http.StatusText(code), code)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte(body))
}

func (s *shop) requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.hits...)
}

func (s *shop) count(path string) int {
	n := 0
	for _, h := range s.requests() {
		if h == path {
			n++
		}
	}
	return n
}

func (s *shop) wire(t *testing.T) *app.Wire {
	t.Helper()
	w, err := app.NewWire(app.Config{
		BaseURL:             s.srv.URL + "/",
		LocalizationTimeout: time.Second,
		LogLevel:            "error",
	}, s.srv.Client(), nil)
	require.NoError(t, err)
	return w
}

func TestBootstrap_ScenarioA_PlaceAndSwitch(t *testing.T) {
	s := newShop(t)
	rec := &xrsim.Recorder{}

	v, err := app.Bootstrap(context.Background(), s.wire(t), "commodityName=chair42&byUrl=https://shop.example/chair42", rec)
	require.NoError(t, err)

	assert.True(t, rec.LoadingHidden())
	assert.True(t, v.Localized)
	assert.Equal(t, []domain.SlotState{domain.Loaded, domain.Unloaded, domain.Unloaded}, v.Catalog.Slots())
	assert.Equal(t, 1, s.count("/chair42/oak.gltf"))
	assert.Zero(t, s.count("/chair42/steel.gltf"))

	session := &xrsim.Session{}
	require.NoError(t, v.Session.Start(context.Background(), session))
	v.Session.Frame(xrsim.Step{Op: xrsim.OpFrame, At: []float64{0.2, -1, -1.5}}.Frame())
	require.NoError(t, v.Session.Select(context.Background()))
	placed := v.Session.Snapshot().Placed
	require.NotNil(t, placed)
	assert.Equal(t, "Oak chair", placed.Instance.Name())
	assert.Equal(t, 1, s.count("/chair42/oak.gltf"), "placement reuses the eager load")

	require.NoError(t, v.Session.Switch(context.Background(), 2))
	switched := v.Session.Snapshot().Placed
	require.NotNil(t, switched)
	assert.Equal(t, 2, switched.Index)
	assert.Equal(t, "Steel chair", switched.Instance.Name())
	assert.True(t, scene.ApproxEqual(placed.Transform, switched.Transform))
	assert.Equal(t, 1, s.count("/chair42/steel.gltf"))
	assert.Zero(t, s.count("/chair42/pine.gltf"))

	c := v.Session.Controls()
	assert.Equal(t, []string{"Дуб", "Сосна", "Сталь"}, c.Buttons)
	assert.Equal(t, "Купити", c.PurchaseLabel)
	assert.Equal(t, "https://shop.example/chair42", c.PurchaseURL)
	assert.Empty(t, rec.Errors())
}

func TestBootstrap_ScenarioB_MissingCommodity(t *testing.T) {
	s := newShop(t)
	rec := &xrsim.Recorder{}

	v, err := app.Bootstrap(context.Background(), s.wire(t), "lang=en", rec)
	require.ErrorIs(t, err, domain.ErrMissingCommodity)
	assert.Nil(t, v)

	assert.Equal(t, []string{"№005: commodityName missing"}, rec.Errors())
	assert.False(t, rec.LoadingHidden())
	assert.Empty(t, s.requests())
}

func TestBootstrap_ScenarioC_IndexUnavailable(t *testing.T) {
	s := newShop(t)
	s.codes["/assetLinks.json"] = http.StatusInternalServerError
	rec := &xrsim.Recorder{}

	_, err := app.Bootstrap(context.Background(), s.wire(t), "commodityName=chair42", rec)
	require.ErrorIs(t, err, domain.ErrIndexUnavailable)

	assert.Equal(t, []string{"/assetLinks.json"}, s.requests())
	require.Len(t, rec.Errors(), 1)
	assert.Contains(t, rec.Errors()[0], "№006")
}

func TestBootstrap_LocalizationFallback(t *testing.T) {
	s := newShop(t)
	s.codes["/exec"] = http.StatusServiceUnavailable
	rec := &xrsim.Recorder{}

	v, err := app.Bootstrap(context.Background(), s.wire(t), "commodityName=chair42&arButtons=2", rec)
	require.NoError(t, err)

	assert.False(t, v.Localized)
	assert.True(t, rec.LoadingHidden())
	assert.Equal(t, 2, v.Catalog.Len())
	assert.Equal(t, []string{"1", "2"}, v.Session.Buttons())
	assert.Equal(t, "Error", v.Bundle.Text("error", ""))
}

func TestBootstrap_FirstModelFailureIsNotFatal(t *testing.T) {
	s := newShop(t)
	s.codes["/chair42/oak.gltf"] = http.StatusNotFound

	v, err := app.Bootstrap(context.Background(), s.wire(t), "commodityName=chair42", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Failed, v.Catalog.Slots()[0])
}

func TestNewWire_RejectsBadInput(t *testing.T) {
	_, err := app.NewWire(app.Config{BaseURL: "http://x/", LogLevel: "chatty"}, nil, nil)
	assert.Error(t, err)

	_, err = app.NewWire(app.Config{BaseURL: "://nope", LogLevel: "info"}, nil, nil)
	assert.Error(t, err)
}
