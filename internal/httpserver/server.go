// internal/httpserver/server.go
//
// HTTP server wiring for the hangman `serve` command.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints: POST /game/new (mode random|daily), POST /game/guess, GET /game/{id}.
//   - Daily endpoints: mounted under /daily (routes_daily.go).
//   - History summary: GET /stats (zero values when no history DB is configured).
//
// Notes:
//   - Rounds live in store.Store; guesses run under Store.Update.
//   - Finished rounds are recorded in the history DB best-effort. Daily
//     rounds are also recorded when they start.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Options configures a Server.
type Options struct {
	Store        store.Store
	Words        *words.List
	History      *stats.Store // optional
	MaxMisses    int
	DailySalt    string
	ClientOrigin string
	Now          func() time.Time // defaults to time.Now
}

// Server bundles router, round store, and history DB.
type Server struct {
	r    *chi.Mux
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"hangman","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","POST /daily/new","/stats"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.opts.Words.Len()})
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Get("/stats", s.handleStats)

	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ ROUNDS -------------------------------------

// roundView is the client-facing shape of a round. Answer is only set once
// the round is finished.
type roundView struct {
	GameID    string     `json:"gameId"`
	Mode      game.Mode  `json:"mode"`
	Date      string     `json:"date,omitempty"`
	Display   string     `json:"display"`
	Length    int        `json:"length"`
	Guessed   []string   `json:"guessed"`
	Misses    int        `json:"misses"`
	MaxMisses int        `json:"maxMisses"`
	State     game.State `json:"state"`
	Answer    string     `json:"answer,omitempty"`
}

func viewOf(g *game.Round) roundView {
	v := roundView{
		GameID:    g.ID,
		Mode:      g.Mode,
		Date:      g.Date,
		Display:   g.Progress(),
		Length:    len(g.Display),
		Guessed:   append([]string{}, g.Guessed...),
		Misses:    g.Misses,
		MaxMisses: g.MaxMisses,
		State:     g.State(),
	}
	if g.Finished {
		v.Answer = g.Answer
	}
	return v
}

// newGameReq is the payload for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "random" (default) | "daily"
	Answer string `json:"answer"` // optional fixed answer for random rounds (testing)
}

// handleNewGame creates a random round (or one with a fixed answer), or a
// daily round when mode is "daily".
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	switch game.Mode(req.Mode) {
	case "", game.ModeRandom:
		ans := req.Answer
		if ans == "" {
			ans = s.opts.Words.Random(nil)
		}
		s.startRound(w, r, game.New(ans, s.opts.MaxMisses))
	case game.ModeDaily:
		s.startDaily(w, r)
	default:
		writeError(w, http.StatusBadRequest, "invalid_mode")
	}
}

func (s *Server) startRound(w http.ResponseWriter, r *http.Request, g *game.Round) {
	if err := s.opts.Store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("gameId", g.ID).Str("mode", string(g.Mode)).Msg("round started")
	writeJSON(w, http.StatusOK, viewOf(g))
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}
type guessRes struct {
	roundView
	Hit bool `json:"hit"`
}

// handleGuess applies one letter and records the round once it finishes.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	var finished *game.Round
	err := s.opts.Store.Update(r.Context(), req.GameID, func(g *game.Round) error {
		hit, _, err := g.ApplyGuess(req.Letter)
		if err != nil {
			return err
		}
		res = guessRes{roundView: viewOf(g), Hit: hit}
		if g.Finished {
			finished = g
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrRoundFinished):
		writeError(w, http.StatusConflict, "round_finished")
		return
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case errors.Is(err, game.ErrAlreadyGuessed):
		writeError(w, http.StatusBadRequest, "already_guessed")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	if finished != nil {
		s.record(r.Context(), finished)
	}
	writeJSON(w, http.StatusOK, res)
}

// record persists a round if history is enabled. Failures are logged only.
func (s *Server) record(ctx context.Context, g *game.Round) {
	if s.opts.History == nil {
		return
	}
	if err := s.opts.History.Record(ctx, stats.FromRound(g, s.opts.Now())); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record result")
	}
}

// handleGetGame returns the current view of a round.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var v roundView
	err := s.opts.Store.Update(r.Context(), id, func(g *game.Round) error {
		v = viewOf(g)
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleStats returns the history summary.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.opts.History == nil {
		writeJSON(w, http.StatusOK, stats.Summary{BestMisses: -1})
		return
	}
	sum, err := s.opts.History.Summarize(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("summarize")
		writeError(w, http.StatusInternalServerError, "stats_failed")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
