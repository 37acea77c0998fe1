package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/ranking"
	"github.com/padraicbc/paddock/standings"
	"github.com/padraicbc/paddock/storage"
	"github.com/padraicbc/paddock/store"
	"github.com/padraicbc/paddock/validation"
)

// Repository is the persistence the admin and sign-in routes need.
// *store.Store implements it.
type Repository interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)

	GetCompetition(ctx context.Context, id string) (*models.Competition, error)
	CreateCompetition(ctx context.Context, c *models.Competition) error
	UpdateCompetition(ctx context.Context, c *models.Competition) error
	DeleteCompetition(ctx context.Context, id string) error
	SetCompetitionImage(ctx context.Context, id, url string) error

	CreateDriver(ctx context.Context, d *models.Driver) error
	UpdateDriver(ctx context.Context, d *models.Driver) error
	DeleteDriver(ctx context.Context, id int64) error

	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	CreateTeam(ctx context.Context, t *models.Team) error
	UpdateTeam(ctx context.Context, t *models.Team) error
	DeleteTeam(ctx context.Context, id int64) error
	SetTeamLogo(ctx context.Context, id int64, url string) error
	TeamDriversOutside(ctx context.Context, teamID int64, competitionID string) (int, error)
}

// Deps are the collaborators a Handler is built from. Uploader may be nil,
// which disables logo uploads.
type Deps struct {
	Repo        Repository
	Standings   *standings.Service
	Uploader    storage.Uploader
	JWTKey      []byte
	IsAdmin     func(username string) bool
	DefaultSort string
	Logger      *zap.Logger
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	repo        Repository
	standings   *standings.Service
	uploader    storage.Uploader
	jwtKey      []byte
	isAdmin     func(string) bool
	defaultSort ranking.SortKey
	log         *zap.Logger
	now         func() time.Time
}

// New creates a Handler from d.
func New(d Deps) *Handler {
	isAdmin := d.IsAdmin
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		repo:        d.Repo,
		standings:   d.Standings,
		uploader:    d.Uploader,
		jwtKey:      d.JWTKey,
		isAdmin:     isAdmin,
		defaultSort: ranking.ParseSortKey(d.DefaultSort),
		log:         log.Named("http"),
		now:         time.Now,
	}
}

// storeError maps repository sentinels onto HTTP statuses.
func storeError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, store.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, store.ErrInvalidReference.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// bindValid binds the request body into req and validates it.
func bindValid(c echo.Context, req any) error {
	if err := bind(c, req); err != nil {
		return err
	}
	return validate(c, req)
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func validate(c echo.Context, req any) error {
	err := c.Validate(req)
	if err == nil {
		return nil
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"message": "validation failed",
			"fields":  verr.Fields,
		})
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
