/*
Package web serves the interactive identification UI: a form with the
three specimen measurements, the identification result with its
knowledge-base record and a collapsible view of the tree's decision
rules. It is a presentation layer only: every label it renders comes
from the identifier and every description from the knowledge base.
*/
package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	plantid "github.com/vicky2004-art/plant-identifier"
	"github.com/vicky2004-art/plant-identifier/feature"
	"github.com/vicky2004-art/plant-identifier/kb"
)

// Server holds the components of the identification web application.
type Server struct {
	identifier *plantid.Identifier
	router     *mux.Router
	httpServer *http.Server
	imageDir   string
}

// New creates a Server exposing the given identifier on the given
// address. imageDir is the directory species images are served from;
// missing images degrade to a warning on the result page.
func New(identifier *plantid.Identifier, addr, imageDir string) *Server {
	s := &Server{
		identifier: identifier,
		router:     mux.NewRouter(),
		imageDir:   imageDir,
	}
	s.routes()
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
	s.router.HandleFunc("/identify", s.handleIdentify).Methods("POST")
	s.router.HandleFunc("/api/identify", s.handleAPIIdentify).Methods("GET")
	s.router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(s.imageDir))))
}

// ListenAndServe starts serving until the server fails or the given
// context is cancelled, whichever happens first.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		log.Printf("serving plant identification UI on %s", s.httpServer.Addr)
		errs <- s.httpServer.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(sctx)
	}
}

type indexData struct {
	StemQualities []string
	Species       []*kb.Record
	Warning       string
}

type resultData struct {
	indexData
	Result      *plantid.Identification
	HeightCm    float64
	LeafWidthCm float64
	Stem        string
	PathText    string
	ImageOK     bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, indexTemplate, s.indexData(r.Context()))
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	height, err1 := strconv.ParseFloat(r.FormValue("height_cm"), 64)
	leafWidth, err2 := strconv.ParseFloat(r.FormValue("leaf_width_cm"), 64)
	stem := r.FormValue("stem_quality")
	if err1 != nil || err2 != nil {
		s.renderWarning(w, r, "Height and leaf width must be numbers.")
		return
	}
	result, err := s.identifier.Identify(r.Context(), height, leafWidth, stem)
	if err != nil {
		log.Printf("request %s: identify(%.1f, %.1f, %s): %v", reqID, height, leafWidth, stem, err)
		s.renderWarning(w, r, "Could not identify the specimen: "+err.Error())
		return
	}
	log.Printf("request %s: identified %s from (%.1f, %.1f, %s)", reqID, result.Species, height, leafWidth, stem)
	data := resultData{
		indexData:   s.indexData(r.Context()),
		Result:      result,
		HeightCm:    height,
		LeafWidthCm: leafWidth,
		Stem:        stem,
		PathText:    result.Path.Describe(feature.Names()),
		ImageOK:     result.Record != nil && s.imageExists(result.Record.Image),
	}
	s.render(w, resultTemplate, data)
}

func (s *Server) handleAPIIdentify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	height, err1 := strconv.ParseFloat(q.Get("height_cm"), 64)
	leafWidth, err2 := strconv.ParseFloat(q.Get("leaf_width_cm"), 64)
	if err1 != nil || err2 != nil {
		respondError(w, http.StatusBadRequest, "height_cm and leaf_width_cm must be numbers")
		return
	}
	result, err := s.identifier.Identify(r.Context(), height, leafWidth, q.Get("stem_quality"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) indexData(ctx context.Context) indexData {
	data := indexData{StemQualities: feature.StemQualities()}
	labels, err := s.identifier.Store().List(ctx)
	if err != nil {
		log.Printf("listing species records: %v", err)
		return data
	}
	for _, l := range labels {
		record, err := s.identifier.Store().Get(ctx, l)
		if err != nil {
			log.Printf("loading species record %s: %v", l, err)
			continue
		}
		if record != nil {
			data.Species = append(data.Species, record)
		}
	}
	return data
}

func (s *Server) renderWarning(w http.ResponseWriter, r *http.Request, warning string) {
	data := s.indexData(r.Context())
	data.Warning = warning
	s.render(w, indexTemplate, data)
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("rendering %s: %v", name, err)
	}
}

func (s *Server) imageExists(image string) bool {
	if s.imageDir == "" || image == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.imageDir, filepath.Base(image)))
	return err == nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
