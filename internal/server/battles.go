package server

import (
	"net/http"
	"time"

	"guildwar-tracker/internal/format"
	"guildwar-tracker/internal/repository"
	"guildwar-tracker/internal/service"
)

type participantRequest struct {
	PlayerID      int64 `json:"player_id"`
	DamageDone    int64 `json:"damage_done"`
	ShieldsBroken int64 `json:"shields_broken"`
}

func toParticipantParams(in []participantRequest) []repository.ParticipantParams {
	if in == nil {
		return nil
	}
	out := make([]repository.ParticipantParams, 0, len(in))
	for _, p := range in {
		out = append(out, repository.ParticipantParams{
			PlayerID:      p.PlayerID,
			DamageDone:    p.DamageDone,
			ShieldsBroken: p.ShieldsBroken,
		})
	}
	return out
}

type participantResponse struct {
	PlayerID            int64  `json:"player_id"`
	PlayerName          string `json:"player_name,omitempty"`
	DamageDone          int64  `json:"damage_done"`
	DamageDoneFormatted string `json:"damage_done_formatted"`
	ShieldsBroken       int64  `json:"shields_broken"`
}

type battleResponse struct {
	ID                   int64                 `json:"id"`
	SeasonID             int64                 `json:"season_id"`
	EnemyName            string                `json:"enemy_name"`
	EnemyPowerRanking    int                   `json:"enemy_power_ranking"`
	OurScore             int                   `json:"our_score"`
	TheirScore           int                   `json:"their_score"`
	Outcome              string                `json:"outcome"`
	TotalDamage          int64                 `json:"total_damage"`
	TotalDamageFormatted string                `json:"total_damage_formatted"`
	Participants         []participantResponse `json:"participants,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
}

func toBattleResponse(d *service.BattleDetail) battleResponse {
	resp := battleResponse{
		ID:                   d.ID,
		SeasonID:             d.SeasonID,
		EnemyName:            d.EnemyName,
		EnemyPowerRanking:    d.EnemyPowerRanking,
		OurScore:             d.OurScore,
		TheirScore:           d.TheirScore,
		Outcome:              string(d.Outcome),
		TotalDamage:          d.TotalDamage,
		TotalDamageFormatted: format.Damage(d.TotalDamage),
		CreatedAt:            d.CreatedAt,
	}
	for _, p := range d.Participants {
		resp.Participants = append(resp.Participants, participantResponse{
			PlayerID:            p.PlayerID,
			PlayerName:          p.PlayerName,
			DamageDone:          p.DamageDone,
			DamageDoneFormatted: format.Damage(p.DamageDone),
			ShieldsBroken:       p.ShieldsBroken,
		})
	}
	return resp
}

func (s *Server) handleListBattles(w http.ResponseWriter, r *http.Request) {
	details, err := s.battles.List(r.Context(), queryInt64(r, "season_id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]battleResponse, 0, len(details))
	for _, d := range details {
		detail := d
		out = append(out, toBattleResponse(&detail))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBattle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SeasonID          int64                `json:"season_id"`
		EnemyName         string               `json:"enemy_name"`
		EnemyPowerRanking int                  `json:"enemy_power_ranking"`
		OurScore          int                  `json:"our_score"`
		TheirScore        int                  `json:"their_score"`
		Participants      []participantRequest `json:"participants"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	battle, err := s.battles.Create(r.Context(), service.CreateBattleRequest{
		SeasonID:          req.SeasonID,
		EnemyName:         req.EnemyName,
		EnemyPowerRanking: req.EnemyPowerRanking,
		OurScore:          req.OurScore,
		TheirScore:        req.TheirScore,
		Participants:      toParticipantParams(req.Participants),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	detail, err := s.battles.Get(r.Context(), battle.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toBattleResponse(detail))
}

func (s *Server) handleGetBattle(w http.ResponseWriter, r *http.Request) {
	battleID, ok := s.urlID(w, r, "battleID")
	if !ok {
		return
	}
	detail, err := s.battles.Get(r.Context(), battleID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toBattleResponse(detail))
}

func (s *Server) handleUpdateBattle(w http.ResponseWriter, r *http.Request) {
	battleID, ok := s.urlID(w, r, "battleID")
	if !ok {
		return
	}

	var req struct {
		EnemyName         *string              `json:"enemy_name"`
		EnemyPowerRanking *int                 `json:"enemy_power_ranking"`
		OurScore          *int                 `json:"our_score"`
		TheirScore        *int                 `json:"their_score"`
		Participants      []participantRequest `json:"participants"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	if _, err := s.battles.Update(r.Context(), battleID, service.UpdateBattleRequest{
		EnemyName:         req.EnemyName,
		EnemyPowerRanking: req.EnemyPowerRanking,
		OurScore:          req.OurScore,
		TheirScore:        req.TheirScore,
		Participants:      toParticipantParams(req.Participants),
	}); err != nil {
		s.writeError(w, err)
		return
	}

	detail, err := s.battles.Get(r.Context(), battleID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toBattleResponse(detail))
}

func (s *Server) handleDeleteBattle(w http.ResponseWriter, r *http.Request) {
	battleID, ok := s.urlID(w, r, "battleID")
	if !ok {
		return
	}
	if err := s.battles.Delete(r.Context(), battleID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusNoContent, nil)
}
