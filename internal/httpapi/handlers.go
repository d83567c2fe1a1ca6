package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/drills/catalog"
	"github.com/katalvlaran/drills/kvstore"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// putRequest is the PUT /v1/kv/{key} body. Zero TTL means the default.
type putRequest struct {
	Value      string `json:"value"`
	TTLSeconds int    `json:"ttl_seconds"`
}

// maxTTLSeconds is the largest ttl_seconds that fits a time.Duration.
const maxTTLSeconds = math.MaxInt64 / int64(time.Second)

// valueResponse is the GET /v1/kv/{key} body.
type valueResponse struct {
	Key        string  `json:"key"`
	Value      string  `json:"value"`
	TTLSeconds float64 `json:"ttl_seconds"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, typ, msg string) {
	var resp ErrorResponse
	resp.Error.Type = typ
	resp.Error.Message = msg
	writeJSON(w, status, resp)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) putValue(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req putRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "bad json: "+err.Error())
		return
	}

	if n := int64(req.TTLSeconds); n < 0 || n > maxTTLSeconds {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "ttl_seconds out of range: "+strconv.Itoa(req.TTLSeconds))
		return
	}
	ttl := s.deps.DefaultTTL
	if req.TTLSeconds != 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}
	err := s.deps.Store.Put(key, req.Value, ttl)
	switch {
	case errors.Is(err, kvstore.ErrBadTTL), errors.Is(err, kvstore.ErrEmptyKey):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getValue(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	v, ok := s.deps.Store.Get(key)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "key not found: "+key)
		return
	}
	left, _ := s.deps.Store.TTL(key)
	writeJSON(w, http.StatusOK, valueResponse{Key: key, Value: v, TTLSeconds: left.Seconds()})
}

func (s *Server) deleteValue(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if !s.deps.Store.Delete(key) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "key not found: "+key)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listProducts maps query parameters onto catalog.Query; page and limit
// default to 1 and 10.
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := catalog.Query{
		Page:   1,
		Limit:  10,
		Search: q.Get("search"),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
	}
	for name, dst := range map[string]*int{"page": &query.Page, "limit": &query.Limit} {
		if raw := q.Get(name); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_INPUT", name+" must be an integer")
				return
			}
			*dst = n
		}
	}

	page, err := s.deps.Catalog.List(query)
	switch {
	case errors.Is(err, catalog.ErrBadPage), errors.Is(err, catalog.ErrBadSortField), errors.Is(err, catalog.ErrBadOrder):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// getProduct serves single products through the LRU cache.
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "id must be an integer")
		return
	}

	if p, ok := s.deps.Products.Get(id); ok {
		writeJSON(w, http.StatusOK, p)
		return
	}
	p, ok := s.deps.Catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "product not found: "+strconv.Itoa(id))
		return
	}
	s.deps.Products.Put(id, p)
	writeJSON(w, http.StatusOK, p)
}
