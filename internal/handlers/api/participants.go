package api

import (
	"net/http"

	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/services/registry"
	"github.com/KirkDiggler/sportsmeet/internal/services/scoring"
	"github.com/gin-gonic/gin"
)

// participantResource serves participant registration and scoring
type participantResource struct {
	registry registry.Service
	scoring  scoring.Service
}

func (r *participantResource) GetName() string {
	return "participants"
}

func (r *participantResource) Register(api *gin.RouterGroup, guard *Guard) {
	api.GET("/teamdata", r.list)
	api.POST("/teamdata", guard.RequireRole(models.RoleTeamLeader), r.create)
	api.PUT("/teamdata/:id", guard.RequireRole(models.RoleAdmin), r.update)
	api.DELETE("/teamdata/:id", guard.RequireRole(models.RoleAdmin), r.delete)

	api.PUT("/participantscores/:id", guard.RequireRole(models.RoleAdmin), r.setScore)
	api.PUT("/participantscores", guard.RequireRole(models.RoleAdmin), r.applyRanks)
}

func (r *participantResource) list(c *gin.Context) {
	out, err := r.registry.ListParticipants(c.Request.Context(), &registry.ListParticipantsInput{
		Team: c.Query("team"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Participants)
}

func (r *participantResource) create(c *gin.Context) {
	var req createParticipantRequest
	if !bindJSON(c, &req) {
		return
	}

	if claims := claimsFrom(c); claims != nil && claims.Role == models.RoleTeamLeader && claims.Team != req.Team {
		respondError(c, errWrongTeam)
		return
	}

	out, err := r.registry.CreateParticipant(c.Request.Context(), &registry.CreateParticipantInput{
		Team:        req.Team,
		ChessNumber: req.ChessNumber,
		Name:        req.Name,
		Programs:    req.Programs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out.Participant)
}

func (r *participantResource) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateParticipantRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := r.registry.UpdateParticipant(c.Request.Context(), &registry.UpdateParticipantInput{
		ParticipantID: id,
		Team:          req.Team,
		ChessNumber:   req.ChessNumber,
		Name:          req.Name,
		Programs:      req.Programs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Participant)
}

func (r *participantResource) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := r.registry.DeleteParticipant(c.Request.Context(), &registry.DeleteParticipantInput{
		ParticipantID: id,
	}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *participantResource) setScore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req setScoreRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Score == nil {
		respondError(c, errs.Validation("score is required"))
		return
	}

	out, err := r.registry.SetScore(c.Request.Context(), &registry.SetScoreInput{
		ParticipantID: id,
		Program:       req.Program,
		Score:         float64(*req.Score),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Participant)
}

func (r *participantResource) applyRanks(c *gin.Context) {
	var req applyRanksRequest
	if !bindJSON(c, &req) {
		return
	}

	assignments := make([]scoring.RankAssignment, 0, len(req.Ranks))
	for _, rank := range req.Ranks {
		assignments = append(assignments, scoring.RankAssignment{
			ParticipantID: rank.ParticipantID,
			Rank:          rank.Rank,
		})
	}

	out, err := r.scoring.ApplyRanks(c.Request.Context(), &scoring.ApplyRanksInput{
		Program:     req.Program,
		Assignments: assignments,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applyRanksResponse{
		Participants: out.Participants,
		TeamScores:   out.TeamScores,
	})
}
