package server

import (
	"net/http"
	"time"

	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/format"
	"guildwar-tracker/internal/service"
)

type playerResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	GameID    string           `json:"game_id,omitempty"`
	Status    string           `json:"status"`
	TeamID    int64            `json:"team_id,omitempty"`
	SeasonID  int64            `json:"season_id,omitempty"`
	Seasons   []seasonResponse `json:"seasons,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func toPlayerResponse(p *domain.Player) playerResponse {
	return playerResponse{
		ID:        p.ID,
		Name:      p.Name,
		GameID:    p.GameID,
		Status:    string(p.Status),
		TeamID:    p.TeamID,
		SeasonID:  p.SeasonID,
		CreatedAt: p.CreatedAt,
	}
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "active"
	}

	summaries, err := s.players.List(r.Context(), status, queryInt64(r, "season_id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]playerResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp := toPlayerResponse(&summary.Player)
		if summary.Seasons != nil {
			resp.Seasons = make([]seasonResponse, 0, len(summary.Seasons))
			for _, season := range summary.Seasons {
				resp.Seasons = append(resp.Seasons, toSeasonResponse(&season))
			}
		}
		out = append(out, resp)
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		GameID   string `json:"game_id"`
		TeamID   int64  `json:"team_id"`
		SeasonID int64  `json:"season_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	player, err := s.players.Create(r.Context(), service.CreatePlayerRequest{
		Name:     req.Name,
		GameID:   req.GameID,
		TeamID:   req.TeamID,
		SeasonID: req.SeasonID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPlayerResponse(player))
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.urlID(w, r, "playerID")
	if !ok {
		return
	}

	var req struct {
		GameID   *string `json:"game_id"`
		SeasonID *int64  `json:"season_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	player, err := s.players.Update(r.Context(), playerID, service.UpdatePlayerRequest{
		GameID:   req.GameID,
		SeasonID: req.SeasonID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (s *Server) handleUpdatePlayerStatus(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.urlID(w, r, "playerID")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	player, err := s.players.SetStatus(r.Context(), playerID, domain.PlayerStatus(req.Status))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPlayerResponse(player))
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.urlID(w, r, "playerID")
	if !ok {
		return
	}
	if err := s.players.Delete(r.Context(), playerID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}

type rosterEntryResponse struct {
	Position   int    `json:"position"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	GameID     string `json:"game_id,omitempty"`
}

func (s *Server) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	entries, err := s.roster.Roster(r.Context(), queryInt64(r, "season_id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]rosterEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, rosterEntryResponse{
			Position:   e.Position,
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			GameID:     e.GameID,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

type rosterSlotResponse struct {
	SeasonID int64 `json:"season_id"`
	PlayerID int64 `json:"player_id"`
	Position int   `json:"position"`
}

func toRosterSlotResponse(slot *domain.RosterSlot) rosterSlotResponse {
	return rosterSlotResponse{SeasonID: slot.SeasonID, PlayerID: slot.PlayerID, Position: slot.Position}
}

// handleUpdateRoster is the single roster mutation endpoint: action selects
// add, move, or remove.
func (s *Server) handleUpdateRoster(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.urlID(w, r, "playerID")
	if !ok {
		return
	}

	var req struct {
		Action   string `json:"action"`
		SeasonID int64  `json:"season_id"`
		Position int    `json:"position"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	switch req.Action {
	case "add":
		slot, err := s.roster.AddToRoster(r.Context(), playerID, req.SeasonID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, toRosterSlotResponse(slot))
	case "move":
		slot, err := s.roster.MovePlayer(r.Context(), playerID, req.Position, req.SeasonID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, toRosterSlotResponse(slot))
	case "remove":
		if err := s.roster.RemoveFromRoster(r.Context(), playerID, req.SeasonID); err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusNoContent, nil)
	default:
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "action must be add, move, or remove"})
	}
}

func (s *Server) handleSwapRoster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerA  int64 `json:"player_a"`
		PlayerB  int64 `json:"player_b"`
		SeasonID int64 `json:"season_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	slotA, slotB, err := s.roster.SwapPlayers(r.Context(), req.PlayerA, req.PlayerB, req.SeasonID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]rosterSlotResponse{
		"player_a": toRosterSlotResponse(slotA),
		"player_b": toRosterSlotResponse(slotB),
	})
}

type playerStatsResponse struct {
	PlayerID             int64  `json:"player_id"`
	PlayerName           string `json:"player_name"`
	TotalDamage          int64  `json:"total_damage"`
	TotalDamageFormatted string `json:"total_damage_formatted"`
	TotalShieldsBroken   int64  `json:"total_shields_broken"`
	BattlesParticipated  int    `json:"battles_participated"`
}

func (s *Server) handlePlayerBattleStats(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.urlID(w, r, "playerID")
	if !ok {
		return
	}

	stats, err := s.stats.PlayerStats(r.Context(), playerID, queryInt64(r, "season_id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, playerStatsResponse{
		PlayerID:             stats.PlayerID,
		PlayerName:           stats.PlayerName,
		TotalDamage:          stats.TotalDamage,
		TotalDamageFormatted: format.Damage(stats.TotalDamage),
		TotalShieldsBroken:   stats.TotalShieldsBroken,
		BattlesParticipated:  stats.BattlesParticipated,
	})
}
