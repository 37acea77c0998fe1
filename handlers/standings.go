package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/paddock/ranking"
	"github.com/padraicbc/paddock/standings"
)

// Competitions returns every competition, normalized.
func (h *Handler) Competitions(c echo.Context) error {
	comps, err := h.standings.Competitions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comps)
}

// Competition returns one competition.
func (h *Handler) Competition(c echo.Context) error {
	comp, err := h.standings.Competition(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, standings.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comp)
}

// CompetitionDrivers returns a competition's drivers, unsorted.
func (h *Handler) CompetitionDrivers(c echo.Context) error {
	drivers, err := h.standings.GetDriversByCompetition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, drivers)
}

// CompetitionTeams returns a competition's teams, unsorted.
func (h *Handler) CompetitionTeams(c echo.Context) error {
	teams, err := h.standings.GetTeamsByCompetition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, teams)
}

// Standings returns the drivers and teams tables of a competition, ranked
// by ?sort= (points, wins or podiums).
func (h *Handler) Standings(c echo.Context) error {
	key := h.defaultSort
	if s := c.QueryParam("sort"); s != "" {
		key = ranking.ParseSortKey(s)
	}

	board, err := h.standings.Board(c.Request().Context(), c.Param("id"), key)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	if board.AllUnavailable() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "standings unavailable")
	}
	return c.JSON(http.StatusOK, board)
}

// TeamColor resolves ?id= and/or ?name= to a display color.
func (h *Handler) TeamColor(c echo.Context) error {
	var ref ranking.TeamRef
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &ref); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	color, err := h.standings.ResolveTeamColor(c.Request().Context(), ref)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"color": color})
}
