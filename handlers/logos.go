package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	maxLogoBytes = 2 << 20
	sniffBytes   = 3072
)

var logoTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// UploadCompetitionLogo stores the multipart "file" and sets it as the
// competition's image.
func (h *Handler) UploadCompetitionLogo(c echo.Context) error {
	if h.uploader == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "logo uploads are not configured")
	}
	ctx := c.Request().Context()
	id := c.Param("id")
	if _, err := h.repo.GetCompetition(ctx, id); err != nil {
		return storeError(err)
	}

	url, err := h.uploadLogo(c, "competitions/"+id)
	if err != nil {
		return err
	}
	if err := h.repo.SetCompetitionImage(ctx, id, url); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"image": url})
}

// UploadTeamLogo stores the multipart "file" and sets it as the team's logo.
func (h *Handler) UploadTeamLogo(c echo.Context) error {
	if h.uploader == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "logo uploads are not configured")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if _, err := h.repo.GetTeam(ctx, id); err != nil {
		return storeError(err)
	}

	url, err := h.uploadLogo(c, fmt.Sprintf("teams/%d", id))
	if err != nil {
		return err
	}
	if err := h.repo.SetTeamLogo(ctx, id, url); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"logo": url})
}

// uploadLogo sniffs the image type of the "file" form field and uploads it
// under prefix.
func (h *Handler) uploadLogo(c echo.Context, prefix string) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	if fh.Size > maxLogoBytes {
		return "", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "logo must be at most 2MB")
	}

	f, err := fh.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	if !slices.ContainsFunc(logoTypes, mtype.Is) {
		return "", echo.NewHTTPError(http.StatusUnsupportedMediaType, "logo must be png, jpeg, gif or webp")
	}
	contentType := mtype.String()

	key := fmt.Sprintf("%s/%d%s", prefix, h.now().UnixNano(), mtype.Extension())
	url, err := h.uploader.Upload(c.Request().Context(), key, contentType, io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		h.log.Error("logo upload failed", zap.String("key", key), zap.Error(err))
		return "", echo.NewHTTPError(http.StatusBadGateway, "logo upload failed")
	}
	return url, nil
}
