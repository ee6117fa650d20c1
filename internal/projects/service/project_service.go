package service

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/devfolio/portfolio-backend/internal/media"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/storage"
)

// ProjectStore is the document store contract the service persists through.
type ProjectStore interface {
	Create(ctx context.Context, ownerID string, p *domain.Project) (*domain.Project, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Update(ctx context.Context, ownerID, id string, p *domain.Project) error
	Delete(ctx context.Context, ownerID, id string) error
}

// Uploader is the object storage contract: write bytes, get a public URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
}

// ListCache caches the per-owner project list. May be nil (cache disabled).
type ListCache interface {
	Get(ctx context.Context, ownerID string) ([]domain.Project, bool)
	Set(ctx context.Context, ownerID string, projects []domain.Project)
	Invalidate(ctx context.Context, ownerID string)
}

// ProjectInput carries the caller-supplied fields of a create or update.
type ProjectInput struct {
	Title          string
	Description    string
	Platform       string
	Technologies   []string
	SourceCodeLink string
	StartDate      string
	EndDate        string
}

// ProjectService orchestrates the project lifecycle: validate inputs, upload
// staged images, persist the assembled record. Validation failures happen
// before any network call; an upload or persistence failure aborts the rest
// of the operation. Objects uploaded before a later failure are not rolled
// back.
type ProjectService struct {
	store    ProjectStore
	uploader Uploader
	cache    ListCache
	now      func() time.Time
}

// NewProjectService creates a new project service. cache may be nil.
func NewProjectService(store ProjectStore, uploader Uploader, cache ListCache) *ProjectService {
	return &ProjectService{
		store:    store,
		uploader: uploader,
		cache:    cache,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var sourceLinkPattern = regexp.MustCompile(`(?i)^https?://`)

const dateLayout = "2006-01-02"

// validateInput checks field constraints and normalizes the input in place.
func validateInput(in *ProjectInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.SourceCodeLink = strings.TrimSpace(in.SourceCodeLink)

	if in.Title == "" || in.Description == "" {
		return domain.Validationf("Title and description are required")
	}
	if utf8.RuneCountInString(in.Title) > domain.MaxTitleLen {
		return domain.Validationf("Title must be %d characters or fewer", domain.MaxTitleLen)
	}
	if utf8.RuneCountInString(in.Description) > domain.MaxDescriptionLen {
		return domain.Validationf("Description must be %d characters or fewer", domain.MaxDescriptionLen)
	}
	if len(in.Technologies) == 0 {
		return domain.Validationf("At least one technology must be selected")
	}
	if in.SourceCodeLink != "" && !sourceLinkPattern.MatchString(in.SourceCodeLink) {
		return domain.Validationf("Source code link must be a valid URL")
	}

	var start, end time.Time
	if in.StartDate != "" {
		var err error
		if start, err = time.Parse(dateLayout, in.StartDate); err != nil {
			return domain.Validationf("Start date must be a valid date (YYYY-MM-DD)")
		}
	}
	if in.EndDate != "" {
		var err error
		if end, err = time.Parse(dateLayout, in.EndDate); err != nil {
			return domain.Validationf("End date must be a valid date (YYYY-MM-DD)")
		}
	}
	if in.StartDate != "" && in.EndDate != "" && start.After(end) {
		return domain.Validationf("End date must be after start date")
	}

	return nil
}

// validateFiles screens every staged file before any upload happens.
func validateFiles(thumbnail *media.Upload, previews []media.Upload, existingPreviews int) error {
	if err := media.ValidatePreviewBatch(existingPreviews, len(previews), domain.MaxPreviewImages); err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}

	if thumbnail != nil {
		if err := media.ValidateImage(*thumbnail, media.RoleThumbnail); err != nil {
			return &domain.ValidationError{Message: err.Error()}
		}
	}
	for _, p := range previews {
		if err := media.ValidateImage(p, media.RolePreview); err != nil {
			return &domain.ValidationError{Message: err.Error()}
		}
	}
	return nil
}

// uploadPreviews uploads the staged preview files sequentially and returns
// their public URLs in submission order.
func (s *ProjectService) uploadPreviews(ctx context.Context, ownerID string, previews []media.Upload) ([]string, error) {
	urls := make([]string, 0, len(previews))
	for _, p := range previews {
		objectPath := storage.PreviewObject(ownerID, p.Name)
		url, err := s.uploader.Upload(ctx, objectPath, p.Data, p.MIME)
		if err != nil {
			return nil, &domain.UploadError{Object: objectPath, Err: err}
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// Create validates, uploads staged images and persists a new project under
// the owner's namespace. Calling it twice with the same input creates two
// distinct records.
func (s *ProjectService) Create(ctx context.Context, ownerID string, in ProjectInput, thumbnail *media.Upload, previews []media.Upload) (*domain.Project, error) {
	if ownerID == "" {
		return nil, domain.ErrAuthRequired
	}
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	if err := validateFiles(thumbnail, previews, 0); err != nil {
		return nil, err
	}

	var thumbnailURL string
	if thumbnail != nil {
		objectPath := storage.ThumbnailObject(ownerID, thumbnail.Name)
		url, err := s.uploader.Upload(ctx, objectPath, thumbnail.Data, thumbnail.MIME)
		if err != nil {
			return nil, &domain.UploadError{Object: objectPath, Err: err}
		}
		thumbnailURL = url
	}

	previewURLs, err := s.uploadPreviews(ctx, ownerID, previews)
	if err != nil {
		return nil, err
	}
	if previewURLs == nil {
		previewURLs = []string{}
	}

	platform := domain.ParsePlatform(in.Platform)
	now := s.now()
	p := &domain.Project{
		Title:            in.Title,
		Description:      in.Description,
		Platform:         platform,
		PlatformIcon:     platform.Icon(),
		Technologies:     in.Technologies,
		TechnologyIcons:  domain.IconsFor(in.Technologies),
		ThumbnailURL:     thumbnailURL,
		PreviewImageURLs: previewURLs,
		SourceCodeLink:   in.SourceCodeLink,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.store.Create(ctx, ownerID, p)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "create project", Err: err}
	}

	s.invalidate(ctx, ownerID)
	return created, nil
}

// Update validates and persists field-level changes to an existing project.
// A new thumbnail replaces the stored URL; otherwise it is kept. New preview
// uploads are appended to existingPreviewURLs, through which the caller
// controls which stored URLs survive. The preview cap is enforced before any
// upload happens.
func (s *ProjectService) Update(ctx context.Context, ownerID, id string, in ProjectInput, newThumbnail *media.Upload, newPreviews []media.Upload, existingPreviewURLs []string) (*domain.Project, error) {
	if ownerID == "" {
		return nil, domain.ErrAuthRequired
	}

	existing, err := s.store.Get(ctx, ownerID, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, err
		}
		return nil, &domain.PersistenceError{Op: "load project", Err: err}
	}

	if err := validateInput(&in); err != nil {
		return nil, err
	}
	if err := validateFiles(newThumbnail, newPreviews, len(existingPreviewURLs)); err != nil {
		return nil, err
	}

	thumbnailURL := existing.ThumbnailURL
	if newThumbnail != nil {
		objectPath := storage.ThumbnailObject(ownerID, newThumbnail.Name)
		url, err := s.uploader.Upload(ctx, objectPath, newThumbnail.Data, newThumbnail.MIME)
		if err != nil {
			return nil, &domain.UploadError{Object: objectPath, Err: err}
		}
		thumbnailURL = url
	}

	newURLs, err := s.uploadPreviews(ctx, ownerID, newPreviews)
	if err != nil {
		return nil, err
	}

	previewURLs := make([]string, 0, len(existingPreviewURLs)+len(newURLs))
	previewURLs = append(previewURLs, existingPreviewURLs...)
	previewURLs = append(previewURLs, newURLs...)

	platform := domain.ParsePlatform(in.Platform)
	updated := &domain.Project{
		ID:               existing.ID,
		Title:            in.Title,
		Description:      in.Description,
		Platform:         platform,
		PlatformIcon:     platform.Icon(),
		Technologies:     in.Technologies,
		TechnologyIcons:  domain.IconsFor(in.Technologies),
		ThumbnailURL:     thumbnailURL,
		PreviewImageURLs: previewURLs,
		SourceCodeLink:   in.SourceCodeLink,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		CreatedAt:        existing.CreatedAt,
		UpdatedAt:        s.now(),
	}

	if err := s.store.Update(ctx, ownerID, id, updated); err != nil {
		return nil, &domain.PersistenceError{Op: "update project", Err: err}
	}

	s.invalidate(ctx, ownerID)
	return updated, nil
}

// Delete removes the project document. Storage objects referenced by it are
// left behind; cleanup is a known limitation. Confirmation is the caller's
// concern.
func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return domain.ErrAuthRequired
	}

	if err := s.store.Delete(ctx, ownerID, id); err != nil {
		if err == domain.ErrNotFound {
			return err
		}
		return &domain.PersistenceError{Op: "delete project", Err: err}
	}

	s.invalidate(ctx, ownerID)
	return nil
}

// Get returns a single project for the owner.
func (s *ProjectService) Get(ctx context.Context, ownerID, id string) (*domain.Project, error) {
	p, err := s.store.Get(ctx, ownerID, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, err
		}
		return nil, &domain.PersistenceError{Op: "load project", Err: err}
	}
	return p, nil
}

// List returns the owner's projects, newest first, consulting the cache
// when one is configured.
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	if s.cache != nil {
		if projects, ok := s.cache.Get(ctx, ownerID); ok {
			return projects, nil
		}
	}

	projects, err := s.store.List(ctx, ownerID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list projects", Err: err}
	}

	if s.cache != nil {
		s.cache.Set(ctx, ownerID, projects)
	}
	return projects, nil
}

func (s *ProjectService) invalidate(ctx context.Context, ownerID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, ownerID)
	}
}
