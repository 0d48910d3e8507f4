package api

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/KirkDiggler/sportsmeet/internal/services/auth"
	"github.com/gin-gonic/gin"
)

type loginResource struct {
	auth auth.Service
}

type loginResponse struct {
	Message   string      `json:"message"`
	Role      models.Role `json:"role"`
	Team      string      `json:"team,omitempty"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (r *loginResource) GetName() string {
	return "login"
}

func (r *loginResource) Register(api *gin.RouterGroup, guard *Guard) {
	api.POST("/login", r.login)
}

func (r *loginResource) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := r.auth.Login(c.Request.Context(), &auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Message:   "Login successful",
		Role:      out.Role,
		Team:      out.Team,
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	})
}
