// internal/httpserver/routes_daily.go
//
// HTTP routes for the "daily word" mode.
//   - POST /daily/new    → start a round on today's word (same as POST /game/new {"mode":"daily"})
//   - GET  /daily/status → today's date and whether a daily round was recorded
//
// The word is chosen deterministically from date + salt, so every client
// playing on the same UTC date gets the same answer. With a history DB, a
// date can be played once: the round is recorded as soon as it starts.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.startDaily)
		r.Get("/status", s.handleDailyStatus)
	})
}

type dailyStatus struct {
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// playedToday reports the date key and whether history already has it.
func (s *Server) playedToday(r *http.Request) (string, bool, error) {
	date := daily.DateKey(s.opts.Now())
	if s.opts.History == nil {
		return date, false, nil
	}
	played, err := s.opts.History.PlayedDaily(r.Context(), date)
	return date, played, err
}

// startDaily starts a round on today's word unless today is already recorded.
func (s *Server) startDaily(w http.ResponseWriter, r *http.Request) {
	date, played, err := s.playedToday(r)
	if err != nil {
		log.Error().Err(err).Msg("daily lookup")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if played {
		writeError(w, http.StatusConflict, "already_played")
		return
	}

	g := game.New(daily.Word(s.opts.Words, s.opts.Now(), s.opts.DailySalt), s.opts.MaxMisses)
	g.Mode, g.Date = game.ModeDaily, date
	s.record(r.Context(), g)
	s.startRound(w, r, g)
}

func (s *Server) handleDailyStatus(w http.ResponseWriter, r *http.Request) {
	date, played, err := s.playedToday(r)
	if err != nil {
		log.Error().Err(err).Msg("daily lookup")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, dailyStatus{Date: date, Played: played})
}
