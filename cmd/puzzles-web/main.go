package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "svw.info/puzzles/internal/adapters/http"
	"svw.info/puzzles/internal/generator"
	"svw.info/puzzles/internal/hint"
	"svw.info/puzzles/internal/infrastructure/config"
	"svw.info/puzzles/internal/infrastructure/storage"
	"svw.info/puzzles/internal/maze"
	"svw.info/puzzles/internal/nonogram"
	"svw.info/puzzles/internal/ports"
	"svw.info/puzzles/internal/solver"
	"svw.info/puzzles/internal/usecase"
	"svw.info/puzzles/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
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

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	addr := flag.String("addr", "", "listen address")
	persist := flag.String("persist-path", "", "save directory")
	levelStr := flag.String("log-level", "", "debug|info|warn|error")
	solverKind := flag.String("solver", "", "solver to use: dlx|backtrack")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	// flags win over the config file
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *persist != "" {
		cfg.DataDir = *persist
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	if *solverKind != "" {
		cfg.Solver = *solverKind
	}

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(cfg.DataDir, 0o755)

	// Choose solver: DLX by default, backtracking as fallback via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(cfg.Solver)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewDLXSolver()
	}

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(cfg.DataDir),
		nonogram.NewService(),
		maze.NewCarver(),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	httpadapter.New(uc).Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.DataDir, "solver", cfg.Solver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
