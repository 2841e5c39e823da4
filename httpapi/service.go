package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/gspan-go/gspan/dfscode"
	"github.com/gspan-go/gspan/embedding"
	"github.com/gspan-go/gspan/graph"
	"github.com/gspan-go/gspan/label"
	"github.com/gspan-go/gspan/miner"
	"github.com/gspan-go/gspan/reader"
)

// Service is a small HTTP control-plane in front of the mining engine,
// grounded on flxj-graphlib's workflow.Service: a host/port pair, a
// lazily-built *gin.Engine, and a router method that wires one route
// group. Unlike the teacher example it holds no mutable registry —
// every request is a self-contained mining run — so the mutex only
// guards the one-time Engine build.
type Service struct {
	host string
	port int

	mu     sync.Mutex
	engine *gin.Engine
}

// NewService returns a Service that will listen on host:port once Run
// is called.
func NewService(host string, port int) *Service {
	return &Service{host: host, port: port}
}

// Run starts the HTTP listener and blocks until it exits or fails.
func (s *Service) Run() error {
	s.mu.Lock()
	if s.engine == nil {
		s.engine = gin.Default()
		s.router()
	}
	eng := s.engine
	s.mu.Unlock()

	return eng.Run(fmt.Sprintf("%s:%d", s.host, s.port))
}

// Handler returns the underlying http.Handler, useful for tests that
// drive the service with httptest without binding a real port.
func (s *Service) Handler() http.Handler {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		s.engine = gin.Default()
		s.router()
	}

	return s.engine
}

func (s *Service) router() {
	mine := s.engine.Group("/mine")

	// POST /mine?minsup=N[&directed=true]: body is a transaction corpus
	// in the reader's line-oriented format (spec.md §6); response is one
	// NDJSON object per emitted pattern, streamed as the engine finds
	// them rather than buffered in full (spec.md §5: the engine is
	// synchronous and the visitor is the only I/O point).
	mine.POST("", func(c *gin.Context) {
		minsup, err := parseMinSup(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var policyOpts []label.PolicyOption
		if c.Query("directed") == "true" {
			policyOpts = append(policyOpts, label.WithDirected())
		}
		pol := label.New(policyOpts...)

		rd := reader.New(c.Request.Body, pol)
		var corpus []*graph.Graph
		for {
			g, err := rd.Next()
			if err != nil {
				break
			}
			corpus = append(corpus, g)
		}

		c.Status(http.StatusOK)
		c.Writer.Header().Set("Content-Type", "application/x-ndjson")

		flusher, canFlush := c.Writer.(http.Flusher)

		err = miner.Mine(context.Background(), corpus, minsup, pol, func(code dfscode.DFSCode, proj embedding.Projection) error {
			c.JSON(http.StatusOK, patternJSON(code, proj, pol))
			if _, werr := c.Writer.Write([]byte("\n")); werr != nil {
				return werr
			}
			if canFlush {
				flusher.Flush()
			}

			return nil
		})
		if err != nil {
			// Headers are already committed once streaming starts; record
			// the failure as a trailing NDJSON error object instead of a
			// second status code.
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		}
	})
}

func parseMinSup(c *gin.Context) (int, error) {
	raw := c.Query("minsup")
	if raw == "" {
		return 0, ErrMissingMinSup
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, ErrMissingMinSup
	}

	return n, nil
}

// patternJSON mirrors writer's transaction-graph rendering, in gin.H
// form, for one emitted pattern.
func patternJSON(code dfscode.DFSCode, proj embedding.Projection, pol *label.Policy) gin.H {
	vlabels := make(map[int]label.Label)
	for _, ec := range code {
		if !pol.IsVoid(ec.VLFrom) {
			vlabels[ec.VIFrom] = ec.VLFrom
		}
		if !pol.IsVoid(ec.VLTo) {
			vlabels[ec.VITo] = ec.VLTo
		}
	}

	idxs := make([]int, 0, len(vlabels))
	for idx := range vlabels {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)

	vertices := make([]gin.H, len(idxs))
	for i, idx := range idxs {
		vertices[i] = gin.H{"index": idx, "label": vlabels[idx]}
	}

	edges := make([]gin.H, len(code))
	for i, ec := range code {
		edges[i] = gin.H{"from": ec.VIFrom, "to": ec.VITo, "label": ec.EL}
	}

	return gin.H{
		"dfs_code": code.String(),
		"vertices": vertices,
		"edges":    edges,
		"found_in": hostNames(proj),
		"support":  proj.Support(),
	}
}

func hostNames(proj embedding.Projection) []string {
	seen := make(map[string]bool)
	var names []string
	for _, h := range proj.Handles {
		n := proj.Arena.Host(h).Name()
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}

	return names
}
