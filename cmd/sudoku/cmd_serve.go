package main

import (
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "github.com/tbjoern/sudoku-solver/internal/adapters/http"
	"github.com/tbjoern/sudoku-solver/internal/generator"
	"github.com/tbjoern/sudoku-solver/internal/hint"
	"github.com/tbjoern/sudoku-solver/internal/infrastructure/storage"
	"github.com/tbjoern/sudoku-solver/internal/ports"
	"github.com/tbjoern/sudoku-solver/internal/solver"
	"github.com/tbjoern/sudoku-solver/internal/usecase"
	"github.com/tbjoern/sudoku-solver/internal/validator"
	"github.com/tbjoern/sudoku-solver/web"
)

var (
	serveAddr    string
	servePersist string
	serveStore   string
	serveSolver  string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and JSON API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&servePersist, "persist-path", "./data", "save directory (fs) or database file (bolt)")
	commandServe.Flags().StringVar(&serveStore, "store", "fs", "puzzle store: fs|bolt")
	commandServe.Flags().StringVar(&serveSolver, "solver", "marks", "solver to use: marks|backtrack")
	mainCommand.AddCommand(commandServe)
}

func newSolver() ports.Solver {
	switch strings.ToLower(strings.TrimSpace(serveSolver)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewMarksSolver()
	}
}

func newStorage() (ports.Storage, func(), error) {
	if strings.EqualFold(serveStore, "bolt") {
		st, err := storage.OpenBolt(servePersist)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	}
	if err := os.MkdirAll(servePersist, 0o755); err != nil {
		return nil, nil, err
	}
	return storage.NewFS(servePersist), func() {}, nil
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": ww.Status(),
			"bytes":  ww.BytesWritten(),
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	})
}

func serve() error {
	s := newSolver()
	st, closeStore, err := newStorage()
	if err != nil {
		return err
	}
	defer closeStore()

	// Wire providers -> use cases -> HTTP adapter
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(r)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logrus.WithFields(logrus.Fields{
		"addr":    serveAddr,
		"persist": servePersist,
		"store":   serveStore,
		"solver":  serveSolver,
	}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
