package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/store"
)

type competitionRequest struct {
	ID          string  `json:"id" validate:"required,max=64,slug"`
	Name        string  `json:"name" validate:"required,max=120"`
	Description *string `json:"description"`
	Season      *string `json:"season" validate:"omitempty,max=16"`
	Image       *string `json:"image" validate:"omitempty,url"`
	Color       *string `json:"color" validate:"omitempty,rgbcolor"`
	Status      *string `json:"status" validate:"omitempty,oneof=ongoing finished upcoming"`
}

func (r *competitionRequest) model() *models.Competition {
	return &models.Competition{
		ID:          strings.ToLower(strings.TrimSpace(r.ID)),
		Name:        strings.TrimSpace(r.Name),
		Description: trimmed(r.Description),
		Season:      trimmed(r.Season),
		Image:       trimmed(r.Image),
		Color:       upper(r.Color),
		Status:      trimmed(r.Status),
	}
}

type driverRequest struct {
	FirstName     string  `json:"first_name" validate:"required,max=60"`
	LastName      string  `json:"last_name" validate:"required,max=60"`
	BirthCountry  *string `json:"birth_country" validate:"omitempty,max=60"`
	BirthDate     *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	VehicleNumber *int    `json:"vehicle_number" validate:"omitempty,min=0,max=999"`
	Points        *int    `json:"points" validate:"omitempty,min=0"`
	Wins          *int    `json:"wins" validate:"omitempty,min=0"`
	Podiums       *int    `json:"podiums" validate:"omitempty,min=0"`
	Active        *bool   `json:"active"`
	ProfileImage  *string `json:"profile_image" validate:"omitempty,url"`
	TeamID        *int64  `json:"team_id" validate:"omitempty,min=1"`
	CompetitionID string  `json:"competition_id" validate:"required,max=64"`
}

func (r *driverRequest) model() *models.Driver {
	return &models.Driver{
		FirstName:     trimmed(&r.FirstName),
		LastName:      trimmed(&r.LastName),
		BirthCountry:  trimmed(r.BirthCountry),
		BirthDate:     trimmed(r.BirthDate),
		VehicleNumber: r.VehicleNumber,
		Points:        zeroIfNil(r.Points),
		Wins:          zeroIfNil(r.Wins),
		Podiums:       zeroIfNil(r.Podiums),
		Active:        r.Active,
		ProfileImage:  trimmed(r.ProfileImage),
		TeamID:        r.TeamID,
		CompetitionID: strings.TrimSpace(r.CompetitionID),
	}
}

type teamRequest struct {
	Name          string  `json:"name" validate:"required,max=120"`
	Color         *string `json:"color" validate:"omitempty,rgbcolor"`
	Logo          *string `json:"logo" validate:"omitempty,url"`
	Points        *int    `json:"points" validate:"omitempty,min=0"`
	Wins          *int    `json:"wins" validate:"omitempty,min=0"`
	Podiums       *int    `json:"podiums" validate:"omitempty,min=0"`
	CompetitionID string  `json:"competition_id" validate:"required,max=64"`
}

func (r *teamRequest) model() *models.Team {
	return &models.Team{
		Name:          strings.TrimSpace(r.Name),
		Color:         upper(r.Color),
		Logo:          trimmed(r.Logo),
		Points:        zeroIfNil(r.Points),
		Wins:          zeroIfNil(r.Wins),
		Podiums:       zeroIfNil(r.Podiums),
		CompetitionID: strings.TrimSpace(r.CompetitionID),
	}
}

// CreateCompetition inserts a new competition.
func (h *Handler) CreateCompetition(c echo.Context) error {
	var req competitionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	comp := req.model()
	if err := h.repo.CreateCompetition(c.Request().Context(), comp); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, comp)
}

// UpdateCompetition replaces a competition. The id comes from the path.
func (h *Handler) UpdateCompetition(c echo.Context) error {
	var req competitionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	req.ID = c.Param("id")
	if err := validate(c, &req); err != nil {
		return err
	}

	comp := req.model()
	if err := h.repo.UpdateCompetition(c.Request().Context(), comp); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, comp)
}

// DeleteCompetition removes a competition with its drivers and teams.
func (h *Handler) DeleteCompetition(c echo.Context) error {
	if err := h.repo.DeleteCompetition(c.Request().Context(), c.Param("id")); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateDriver inserts a new driver.
func (h *Handler) CreateDriver(c echo.Context) error {
	var req driverRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	driver := req.model()
	if err := h.checkDriverTeam(c, driver); err != nil {
		return err
	}
	if err := h.repo.CreateDriver(c.Request().Context(), driver); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, driver)
}

// UpdateDriver replaces a driver.
func (h *Handler) UpdateDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req driverRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	driver := req.model()
	driver.ID = id
	if err := h.checkDriverTeam(c, driver); err != nil {
		return err
	}
	if err := h.repo.UpdateDriver(c.Request().Context(), driver); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, driver)
}

// DeleteDriver removes a driver.
func (h *Handler) DeleteDriver(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.repo.DeleteDriver(c.Request().Context(), id); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateTeam inserts a new team.
func (h *Handler) CreateTeam(c echo.Context) error {
	var req teamRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	team := req.model()
	if err := h.repo.CreateTeam(c.Request().Context(), team); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, team)
}

// UpdateTeam replaces a team.
func (h *Handler) UpdateTeam(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req teamRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	team := req.model()
	team.ID = id
	if err := h.checkTeamDrivers(c, team); err != nil {
		return err
	}
	if err := h.repo.UpdateTeam(c.Request().Context(), team); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team; its drivers become teamless.
func (h *Handler) DeleteTeam(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.repo.DeleteTeam(c.Request().Context(), id); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// checkDriverTeam keeps a driver's team inside the driver's competition.
func (h *Handler) checkDriverTeam(c echo.Context, d *models.Driver) error {
	if d.TeamID == nil {
		return nil
	}
	team, err := h.repo.GetTeam(c.Request().Context(), *d.TeamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "team does not exist")
		}
		return storeError(err)
	}
	if team.CompetitionID != d.CompetitionID {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "team belongs to another competition")
	}
	return nil
}

// checkTeamDrivers refuses to move a team away from the competition its
// drivers race in.
func (h *Handler) checkTeamDrivers(c echo.Context, t *models.Team) error {
	n, err := h.repo.TeamDriversOutside(c.Request().Context(), t.ID, t.CompetitionID)
	if err != nil {
		return storeError(err)
	}
	if n > 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("team has %d drivers in another competition", n))
	}
	return nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func upper(s *string) *string {
	t := trimmed(s)
	if t == nil {
		return nil
	}
	u := strings.ToUpper(*t)
	return &u
}

func zeroIfNil(n *int) *int {
	if n == nil {
		z := 0
		return &z
	}
	return n
}
