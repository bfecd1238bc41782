package server

import (
	"net/http"
	"time"

	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/format"
)

type seasonResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TeamID    int64     `json:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toSeasonResponse(season *domain.Season) seasonResponse {
	return seasonResponse{
		ID:        season.ID,
		Name:      season.Name,
		TeamID:    season.TeamID,
		CreatedAt: season.CreatedAt,
	}
}

func (s *Server) handleListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := s.seasons.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]seasonResponse, 0, len(seasons))
	for _, season := range seasons {
		out = append(out, toSeasonResponse(&season))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSeason(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		TeamID int64  `json:"team_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	season, err := s.seasons.Create(r.Context(), req.Name, req.TeamID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toSeasonResponse(season))
}

func (s *Server) handleCurrentSeason(w http.ResponseWriter, r *http.Request) {
	season, err := s.seasons.Current(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSeasonResponse(season))
}

func (s *Server) handleRenameSeason(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := s.urlID(w, r, "seasonID")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	season, err := s.seasons.Rename(r.Context(), seasonID, req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSeasonResponse(season))
}

func (s *Server) handleDeleteSeason(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := s.urlID(w, r, "seasonID")
	if !ok {
		return
	}
	if err := s.seasons.Delete(r.Context(), seasonID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}

type seasonStatsResponse struct {
	TotalBattles         int     `json:"total_battles"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	Ties                 int     `json:"ties"`
	WinRate              float64 `json:"win_rate"`
	TotalDamage          int64   `json:"total_damage"`
	TotalDamageFormatted string  `json:"total_damage_formatted"`
	AvgDamage            float64 `json:"avg_damage"`
}

func (s *Server) handleSeasonStats(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := s.urlID(w, r, "seasonID")
	if !ok {
		return
	}

	stats, err := s.stats.SeasonStats(r.Context(), seasonID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, seasonStatsResponse{
		TotalBattles:         stats.TotalBattles,
		Wins:                 stats.Wins,
		Losses:               stats.Losses,
		Ties:                 stats.Ties,
		WinRate:              stats.WinRate,
		TotalDamage:          stats.TotalDamage,
		TotalDamageFormatted: format.Damage(stats.TotalDamage),
		AvgDamage:            stats.AvgDamage,
	})
}

type rankingResponse struct {
	PlayerID             int64   `json:"player_id"`
	PlayerName           string  `json:"player_name"`
	TotalDamage          int64   `json:"total_damage"`
	TotalDamageFormatted string  `json:"total_damage_formatted"`
	TotalShieldsBroken   int64   `json:"total_shields_broken"`
	BattlesParticipated  int     `json:"battles_participated"`
	AvgDamage            float64 `json:"avg_damage"`
}

func (s *Server) handleTopPlayers(w http.ResponseWriter, r *http.Request) {
	seasonID, ok := s.urlID(w, r, "seasonID")
	if !ok {
		return
	}

	limit := int(queryInt64(r, "limit"))
	rankings, err := s.stats.TopPlayers(r.Context(), seasonID, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]rankingResponse, 0, len(rankings))
	for _, ranking := range rankings {
		out = append(out, rankingResponse{
			PlayerID:             ranking.PlayerID,
			PlayerName:           ranking.PlayerName,
			TotalDamage:          ranking.TotalDamage,
			TotalDamageFormatted: format.Damage(ranking.TotalDamage),
			TotalShieldsBroken:   ranking.TotalShieldsBroken,
			BattlesParticipated:  ranking.BattlesParticipated,
			AvgDamage:            ranking.AvgDamage,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}
