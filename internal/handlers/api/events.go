package api

import (
	"net/http"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/services/schedule"
	"github.com/gin-gonic/gin"
)

// eventResource serves the event schedule
type eventResource struct {
	schedule schedule.Service
}

func (r *eventResource) GetName() string {
	return "events"
}

func (r *eventResource) Register(api *gin.RouterGroup, guard *Guard) {
	api.GET("/events", r.list)
	api.GET("/events/:id", r.get)
	api.POST("/events", guard.RequireRole(models.RoleAdmin), r.create)
	api.PUT("/events/:id", guard.RequireRole(models.RoleAdmin), r.update)
	api.DELETE("/events/:id", guard.RequireRole(models.RoleAdmin), r.delete)
}

func (r *eventResource) list(c *gin.Context) {
	out, err := r.schedule.ListEvents(c.Request.Context(), &schedule.ListEventsInput{
		State: models.EventState(c.Query("state")),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Events)
}

func (r *eventResource) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := r.schedule.GetEvent(c.Request.Context(), &schedule.GetEventInput{EventID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Event)
}

func (r *eventResource) create(c *gin.Context) {
	var req createEventRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := r.schedule.CreateEvent(c.Request.Context(), &schedule.CreateEventInput{
		Category: req.Category,
		Name:     req.Name,
		Date:     req.Date,
		Time:     req.Time,
		EndTime:  req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out.Event)
}

func (r *eventResource) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := r.schedule.UpdateEvent(c.Request.Context(), &schedule.UpdateEventInput{
		EventID:  id,
		Category: req.Category,
		Name:     req.Name,
		Date:     req.Date,
		Time:     req.Time,
		EndTime:  req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Event)
}

func (r *eventResource) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := r.schedule.DeleteEvent(c.Request.Context(), &schedule.DeleteEventInput{EventID: id}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
