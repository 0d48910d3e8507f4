package api

import (
	"net/http"

	"github.com/KirkDiggler/sportsmeet/internal/services/scoring"
	"github.com/gin-gonic/gin"
)

// scoreResource serves the team table and the individual leaderboard
type scoreResource struct {
	scoring scoring.Service
}

func (r *scoreResource) GetName() string {
	return "scores"
}

func (r *scoreResource) Register(api *gin.RouterGroup, guard *Guard) {
	api.GET("/teamscores", r.teamScores)
	api.GET("/top10participants", r.topParticipants)
}

func (r *scoreResource) teamScores(c *gin.Context) {
	out, err := r.scoring.ListTeamScores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.TeamScores)
}

func (r *scoreResource) topParticipants(c *gin.Context) {
	out, err := r.scoring.TopParticipants(c.Request.Context(), &scoring.TopParticipantsInput{
		Limit: scoring.DefaultTopLimit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Standings)
}
