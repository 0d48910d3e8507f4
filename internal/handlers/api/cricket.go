package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/services/cricket"
	"github.com/gin-gonic/gin"
)

// skippedMatchesHeader lists update IDs that matched no match
const skippedMatchesHeader = "X-Skipped-Matches"

// cricketResource serves the cricket scoreboard
type cricketResource struct {
	cricket cricket.Service
}

func (r *cricketResource) GetName() string {
	return "cricket"
}

func (r *cricketResource) Register(api *gin.RouterGroup, guard *Guard) {
	api.GET("/cricketscores", r.list)
	api.POST("/cricketscores", guard.RequireRole(models.RoleAdmin), r.create)
	api.PUT("/cricketscores", guard.RequireRole(models.RoleAdmin), r.update)
	api.DELETE("/cricketscores/:id", guard.RequireRole(models.RoleAdmin), r.delete)
}

func (r *cricketResource) list(c *gin.Context) {
	out, err := r.cricket.ListMatches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Matches)
}

func (r *cricketResource) create(c *gin.Context) {
	var req createMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := r.cricket.CreateMatch(c.Request.Context(), &cricket.CreateMatchInput{
		Team1Name: req.Team1Name,
		Team2Name: req.Team2Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out.Match)
}

// update takes the whole edited scoreboard, or any subset of it, and answers
// with the full scoreboard
func (r *cricketResource) update(c *gin.Context) {
	var req []matchRequest
	if !bindJSON(c, &req) {
		return
	}

	updates := make([]cricket.MatchUpdate, 0, len(req))
	for i := range req {
		update, err := req[i].toUpdate()
		if err != nil {
			respondError(c, err)
			return
		}
		updates = append(updates, update)
	}

	out, err := r.cricket.UpdateMatches(c.Request.Context(), &cricket.UpdateMatchesInput{Updates: updates})
	if err != nil {
		respondError(c, err)
		return
	}

	if len(out.SkippedIDs) > 0 {
		ids := make([]string, 0, len(out.SkippedIDs))
		for _, id := range out.SkippedIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		c.Header(skippedMatchesHeader, strings.Join(ids, ","))
	}
	c.JSON(http.StatusOK, out.Matches)
}

func (r *cricketResource) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := r.cricket.DeleteMatch(c.Request.Context(), &cricket.DeleteMatchInput{MatchID: id}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
