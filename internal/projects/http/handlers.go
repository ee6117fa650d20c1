package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/media"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/projects/service"
)

type Handler struct {
	svc *service.ProjectService
}

func NewHandler(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// inputFromForm collects the text fields of a multipart create/update form.
func inputFromForm(c *gin.Context) service.ProjectInput {
	return service.ProjectInput{
		Title:          c.PostForm("title"),
		Description:    c.PostForm("description"),
		Platform:       c.PostForm("platform"),
		Technologies:   c.PostFormArray("technologies"),
		SourceCodeLink: c.PostForm("sourceCodeLink"),
		StartDate:      c.PostForm("startDate"),
		EndDate:        c.PostForm("endDate"),
	}
}

func readUpload(fh *multipart.FileHeader) (*media.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &media.Upload{
		Name: fh.Filename,
		MIME: fh.Header.Get("Content-Type"),
		Data: data,
	}, nil
}

// stagedFiles pulls the thumbnail and preview files out of the form.
func stagedFiles(c *gin.Context) (*media.Upload, []media.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	var thumbnail *media.Upload
	if fhs := form.File["thumbnail"]; len(fhs) > 0 {
		if thumbnail, err = readUpload(fhs[0]); err != nil {
			return nil, nil, err
		}
	}

	var previews []media.Upload
	for _, fh := range form.File["previewImages"] {
		u, err := readUpload(fh)
		if err != nil {
			return nil, nil, err
		}
		previews = append(previews, *u)
	}

	return thumbnail, previews, nil
}

// writeError collapses the error taxonomy to a status code and a single
// human-readable message.
func writeError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}

func (h *Handler) create(c *gin.Context) {
	thumbnail, previews, err := stagedFiles(c)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), auth.UserID(c), inputFromForm(c), thumbnail, previews)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	thumbnail, previews, err := stagedFiles(c)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}

	// The caller controls which stored preview URLs survive; omitted URLs
	// are dropped from the record.
	existingURLs := c.PostFormArray("existingPreviewImageUrls")

	p, err := h.svc.Update(c.Request.Context(), auth.UserID(c), c.Param("id"), inputFromForm(c), thumbnail, previews, existingURLs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// delete is unconditional here; the dashboard confirms with the user before
// calling it.
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
