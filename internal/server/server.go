package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"guildwar-tracker/internal/service"
)

// Server exposes the tracker services as a JSON REST API.
type Server struct {
	players *service.PlayerService
	seasons *service.SeasonService
	roster  *service.RosterService
	battles *service.BattleService
	stats   *service.StatsService
	logger  zerolog.Logger
}

func NewServer(
	players *service.PlayerService,
	seasons *service.SeasonService,
	roster *service.RosterService,
	battles *service.BattleService,
	stats *service.StatsService,
	logger zerolog.Logger,
) *Server {
	return &Server{
		players: players,
		seasons: seasons,
		roster:  roster,
		battles: battles,
		stats:   stats,
		logger:  logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", s.handleListPlayers)
			r.Post("/", s.handleCreatePlayer)
			r.Get("/roster", s.handleGetRoster)
			r.Put("/swap-roster", s.handleSwapRoster)
			r.Route("/{playerID}", func(r chi.Router) {
				r.Put("/", s.handleUpdatePlayer)
				r.Delete("/", s.handleDeletePlayer)
				r.Put("/status", s.handleUpdatePlayerStatus)
				r.Put("/roster", s.handleUpdateRoster)
				r.Get("/battle-stats", s.handlePlayerBattleStats)
			})
		})

		r.Route("/battles", func(r chi.Router) {
			r.Get("/", s.handleListBattles)
			r.Post("/", s.handleCreateBattle)
			r.Route("/{battleID}", func(r chi.Router) {
				r.Get("/", s.handleGetBattle)
				r.Put("/", s.handleUpdateBattle)
				r.Delete("/", s.handleDeleteBattle)
			})
		})

		r.Route("/seasons", func(r chi.Router) {
			r.Get("/", s.handleListSeasons)
			r.Post("/", s.handleCreateSeason)
			r.Get("/current", s.handleCurrentSeason)
			r.Route("/{seasonID}", func(r chi.Router) {
				r.Put("/", s.handleRenameSeason)
				r.Delete("/", s.handleDeleteSeason)
				r.Get("/stats", s.handleSeasonStats)
				r.Get("/top-players", s.handleTopPlayers)
			})
		})
	})

	return r
}
