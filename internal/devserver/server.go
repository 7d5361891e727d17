package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"

	"arviewer/internal/domain"
)

// Config is read from the environment by LoadConfig.
type Config struct {
	AssetDir string `env:"ARVIEWER_ASSET_DIR" envDefault:"."`
	Addr     string `env:"ARVIEWER_ADDR" envDefault:":8080"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// reserved query keys that identify the sheet rather than a text.
var reserved = map[string]bool{"sheetKey": true, "sheetName": true, "lang": true}

var langPattern = regexp.MustCompile(`^[a-z]{2,8}(-[a-z0-9]{1,8})*$`)

// Server serves one asset directory.
type Server struct {
	dir    string
	logger *slog.Logger
}

// New returns a Server for dir.
func New(dir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{dir: dir, logger: logger.With("component", "devserver")}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.accessLog)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.HandleFunc("/localization", s.localization).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.dir))).Methods(http.MethodGet, http.MethodHead)
	return r
}

func (s *Server) localization(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := q.Get("lang")
	if !langPattern.MatchString(lang) {
		http.Error(w, "bad lang", http.StatusBadRequest)
		return
	}

	texts, err := s.texts(lang)
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "unknown lang", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "read translations", "lang", lang, "error", err)
		http.Error(w, "bad translations", http.StatusInternalServerError)
		return
	}

	out := domain.Bundle{}
	for key := range q {
		if reserved[key] {
			continue
		}
		if v, ok := texts[key]; ok {
			out[key] = v
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) texts(lang string) (domain.Bundle, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, "localization", lang+".json"))
	if err != nil {
		return nil, err
	}
	var texts domain.Bundle
	if err := json.Unmarshal(b, &texts); err != nil {
		return nil, fmt.Errorf("decode %s.json: %w", lang, err)
	}
	return texts, nil
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}
		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", sw.status,
			"bytes", sw.bytes,
			"duration", time.Since(start),
		)
	})
}
