package server

import (
	"net/http"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/swiftlens/swiftlens/internal/example"
	"github.com/swiftlens/swiftlens/pkg/swiftparse"
)

// parseRequest is the POST /api/parse payload. Root is optional; the
// highest-ranked candidate is used when it is empty.
type parseRequest struct {
	Source string `json:"source"`
	Root   string `json:"root"`
}

// parseResponse carries the outcome. Exactly one of Tree or Message is
// meaningful: Message explains which empty state the caller hit.
type parseResponse struct {
	Roots   []string         `json:"roots,omitempty"`
	Root    string           `json:"root,omitempty"`
	Tree    *swiftparse.Node `json:"tree,omitempty"`
	Message string           `json:"message,omitempty"`
}

// The three user-visible empty states, kept distinct so the client can
// message them separately.
const (
	msgNoInput   = "no source text provided"
	msgNoViews   = "no view declarations found"
	msgNoBody    = "selected view has no parsable body"
	msgBadJSON   = "request body is not valid JSON"
	msgRootQuery = "unknown root requested"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"source": example.Source})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxSource)

	var req parseRequest
	if err := gojson.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, parseResponse{Message: msgBadJSON})
		return
	}

	if strings.TrimSpace(req.Source) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, parseResponse{Message: msgNoInput})
		return
	}

	decls := swiftparse.ExtractDeclarations(req.Source)
	roots := swiftparse.RootCandidates(decls)
	if len(roots) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, parseResponse{Message: msgNoViews})
		return
	}

	root := req.Root
	if root == "" {
		root = roots[0]
	} else if _, ok := decls[root]; !ok {
		writeJSON(w, http.StatusUnprocessableEntity, parseResponse{Roots: roots, Message: msgRootQuery})
		return
	}

	tree, ok := swiftparse.BuildTree(decls, root)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, parseResponse{Roots: roots, Root: root, Message: msgNoBody})
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{Roots: roots, Root: root, Tree: tree})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = gojson.NewEncoder(w).Encode(v)
}
