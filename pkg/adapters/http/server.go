// Package http exposes a reconciled tree over a JSON API.
//
// The tree model itself is single-owner; this adapter is the external
// synchronization the model requires, serializing every rebuild and read
// behind one mutex.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dverney/espalier"
	"github.com/dverney/espalier/internal/logging"
	"github.com/dverney/espalier/pkg/domain"
)

// TreeNode is the wire representation of a node.
type TreeNode struct {
	ID              uint64     `json:"id"`
	Label           string     `json:"label"`
	Group           bool       `json:"group,omitempty"`
	CanHaveChildren bool       `json:"can_have_children,omitempty"`
	Children        []TreeNode `json:"children,omitempty"`
}

// RebuildResponse is the body of POST /rebuild.
type RebuildResponse struct {
	Changed bool `json:"changed"`
}

// Labeler resolves the display label for a node.
type Labeler func(*domain.Node) string

// Server serves a controller's tree. Create it with NewServer (or NewHandler
// when only the http.Handler is needed).
type Server struct {
	controller *espalier.TreeController
	label      Labeler
	logger     *slog.Logger

	mu sync.Mutex // guards controller access

	registry  *prometheus.Registry
	rebuilds  prometheus.Counter
	changes   prometheus.Counter
	nodeCount prometheus.Gauge
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLabeler sets the node label resolver. The default prints the
// represented object with %v (and an empty label for the root sentinel).
func WithLabeler(label Labeler) Option {
	return func(s *Server) {
		s.label = label
	}
}

// WithLogger sets a structured logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server for controller.
func NewServer(controller *espalier.TreeController, opts ...Option) *Server {
	s := &Server{
		controller: controller,
		registry:   prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.label == nil {
		s.label = defaultLabel
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	s.rebuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "espalier_rebuilds_total",
		Help: "Number of rebuilds requested over the API.",
	})
	s.changes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "espalier_rebuild_changes_total",
		Help: "Number of rebuilds that changed the tree.",
	})
	s.nodeCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "espalier_tree_nodes",
		Help: "Nodes in the tree, root included, as of the last request.",
	})
	s.registry.MustRegister(s.rebuilds, s.changes, s.nodeCount)
	s.nodeCount.Set(float64(s.countNodes()))
	return s
}

// NewHandler creates the HTTP handler for controller. It is shorthand for
// NewServer(controller, opts...).Handler().
func NewHandler(controller *espalier.TreeController, opts ...Option) http.Handler {
	return NewServer(controller, opts...).Handler()
}

// Handler returns the server's router.
//
// Routes:
//
//	GET  /tree     full tree as nested JSON
//	POST /rebuild  reconcile against the delegate, report whether it changed
//	GET  /health   liveness
//	GET  /metrics  Prometheus metrics (rebuild counts, tree size)
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/tree", s.GetTree)
	r.Post("/rebuild", s.Rebuild)
	r.Get("/health", s.GetHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// RebuildNow reconciles the tree behind the server's lock and updates the
// rebuild metrics. Hosts call it when a watch signal arrives out-of-band.
func (s *Server) RebuildNow() bool {
	s.mu.Lock()
	changed := s.controller.Rebuild()
	count := s.countNodesLocked()
	s.mu.Unlock()

	s.rebuilds.Inc()
	if changed {
		s.changes.Inc()
	}
	s.nodeCount.Set(float64(count))
	return changed
}

func defaultLabel(n *domain.Node) string {
	if n.IsRoot() {
		return ""
	}
	return fmt.Sprintf("%v", n.Object())
}

// GetTree handles the GET /tree request.
func (s *Server) GetTree(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dto := s.mapNode(s.controller.RootNode())
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		s.logger.Error("tree response encode failed", "error", err)
	}
}

// Rebuild handles the POST /rebuild request.
func (s *Server) Rebuild(w http.ResponseWriter, r *http.Request) {
	changed := s.RebuildNow()
	s.logger.Debug("rebuild requested", "changed", changed)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RebuildResponse{Changed: changed}); err != nil {
		s.logger.Error("rebuild response encode failed", "error", err)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) mapNode(n *domain.Node) TreeNode {
	dto := TreeNode{
		ID:              n.ID(),
		Label:           s.label(n),
		Group:           n.IsGroup,
		CanHaveChildren: n.CanHaveChildren,
	}
	for _, child := range n.Children() {
		dto.Children = append(dto.Children, s.mapNode(child))
	}
	return dto
}

func (s *Server) countNodes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countNodesLocked()
}

func (s *Server) countNodesLocked() int {
	count := 0
	s.controller.VisitNodes(func(*domain.Node) {
		count++
	})
	return count
}
