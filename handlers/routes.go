package handlers

import (
	"github.com/labstack/echo/v4"

	mw "github.com/padraicbc/paddock/middleware"
)

// Register mounts every API route on e.
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")

	// Public
	api.POST("/signin", h.Signin)
	api.GET("/competitions", h.Competitions)
	api.GET("/competitions/:id", h.Competition)
	api.GET("/competitions/:id/drivers", h.CompetitionDrivers)
	api.GET("/competitions/:id/teams", h.CompetitionTeams)
	api.GET("/competitions/:id/standings", h.Standings)
	api.GET("/teams/color", h.TeamColor)

	// Admin – valid JWT carrying the admin flag
	admin := api.Group("/admin", mw.JWT(h.jwtKey), mw.RequireAdmin)
	admin.POST("/competitions", h.CreateCompetition)
	admin.PUT("/competitions/:id", h.UpdateCompetition)
	admin.DELETE("/competitions/:id", h.DeleteCompetition)
	admin.POST("/competitions/:id/logo", h.UploadCompetitionLogo)
	admin.POST("/drivers", h.CreateDriver)
	admin.PUT("/drivers/:id", h.UpdateDriver)
	admin.DELETE("/drivers/:id", h.DeleteDriver)
	admin.POST("/teams", h.CreateTeam)
	admin.PUT("/teams/:id", h.UpdateTeam)
	admin.DELETE("/teams/:id", h.DeleteTeam)
	admin.POST("/teams/:id/logo", h.UploadTeamLogo)
}
