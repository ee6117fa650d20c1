package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/portfolio-backend/internal/media"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

type fakeStore struct {
	projects map[string]map[string]*domain.Project
	nextID   int
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{projects: map[string]map[string]*domain.Project{}}
}

func (f *fakeStore) owner(ownerID string) map[string]*domain.Project {
	if f.projects[ownerID] == nil {
		f.projects[ownerID] = map[string]*domain.Project{}
	}
	return f.projects[ownerID]
}

func (f *fakeStore) Create(_ context.Context, ownerID string, p *domain.Project) (*domain.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	created := *p
	created.ID = fmt.Sprintf("doc-%d", f.nextID)
	f.owner(ownerID)[created.ID] = &created
	return &created, nil
}

func (f *fakeStore) Get(_ context.Context, ownerID, id string) (*domain.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.owner(ownerID)[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) List(_ context.Context, ownerID string) ([]domain.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.Project, 0, len(f.owner(ownerID)))
	for _, p := range f.owner(ownerID) {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, ownerID, id string, p *domain.Project) error {
	if f.failWith != nil {
		return f.failWith
	}
	cp := *p
	f.owner(ownerID)[id] = &cp
	return nil
}

func (f *fakeStore) Delete(_ context.Context, ownerID, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.owner(ownerID)[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.owner(ownerID), id)
	return nil
}

type fakeUploader struct {
	uploaded []string
	failWith error
}

func (f *fakeUploader) Upload(_ context.Context, objectPath string, _ []byte, _ string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.uploaded = append(f.uploaded, objectPath)
	return "https://storage.example.com/bucket/" + objectPath, nil
}

func setupService(t *testing.T) (*ProjectService, *fakeStore, *fakeUploader) {
	t.Helper()

	store := newFakeStore()
	uploader := &fakeUploader{}
	svc := NewProjectService(store, uploader, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store, uploader
}

func validImage(t *testing.T, name string) media.Upload {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1920, 1080))))
	return media.Upload{Name: name, MIME: "image/png", Data: buf.Bytes()}
}

func validInput() ProjectInput {
	return ProjectInput{
		Title:        "Demo",
		Description:  "Demo project",
		Platform:     "web",
		Technologies: []string{"React"},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates project without images", func(t *testing.T) {
		svc, _, uploader := setupService(t)

		p, err := svc.Create(ctx, "owner-1", validInput(), nil, nil)
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Demo", p.Title)
		assert.Empty(t, p.ThumbnailURL)
		assert.Equal(t, []string{}, p.PreviewImageURLs)
		assert.False(t, p.CreatedAt.IsZero())
		assert.False(t, p.UpdatedAt.IsZero())
		assert.Empty(t, uploader.uploaded)
	})

	t.Run("round-trips caller fields through get", func(t *testing.T) {
		svc, _, _ := setupService(t)

		in := validInput()
		in.SourceCodeLink = "https://github.com/owner/demo"
		in.StartDate = "2024-01-01"
		in.EndDate = "2024-06-01"

		created, err := svc.Create(ctx, "owner-1", in, nil, nil)
		require.NoError(t, err)

		got, err := svc.Get(ctx, "owner-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, in.Title, got.Title)
		assert.Equal(t, in.Description, got.Description)
		assert.Equal(t, in.Technologies, got.Technologies)
		assert.Equal(t, in.SourceCodeLink, got.SourceCodeLink)
		assert.Equal(t, in.StartDate, got.StartDate)
		assert.Equal(t, in.EndDate, got.EndDate)
	})

	t.Run("empty title fails with no side effects", func(t *testing.T) {
		svc, store, uploader := setupService(t)

		in := validInput()
		in.Title = "   "
		_, err := svc.Create(ctx, "owner-1", in, nil, []media.Upload{validImage(t, "shot.png")})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, "Title and description are required", err.Error())
		assert.Empty(t, uploader.uploaded)
		assert.Empty(t, store.owner("owner-1"))
	})

	t.Run("title length is counted in characters, not bytes", func(t *testing.T) {
		svc, _, _ := setupService(t)

		in := validInput()
		in.Title = strings.Repeat("プ", domain.MaxTitleLen)
		_, err := svc.Create(ctx, "owner-1", in, nil, nil)
		require.NoError(t, err)

		in.Title = strings.Repeat("プ", domain.MaxTitleLen+1)
		_, err = svc.Create(ctx, "owner-1", in, nil, nil)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("Title must be %d characters or fewer", domain.MaxTitleLen), err.Error())
	})

	t.Run("overlong description fails", func(t *testing.T) {
		svc, _, _ := setupService(t)

		in := validInput()
		in.Description = strings.Repeat("é", domain.MaxDescriptionLen+1)
		_, err := svc.Create(ctx, "owner-1", in, nil, nil)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("empty technologies fails", func(t *testing.T) {
		svc, _, _ := setupService(t)

		in := validInput()
		in.Technologies = nil
		_, err := svc.Create(ctx, "owner-1", in, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "At least one technology must be selected", err.Error())
	})

	t.Run("non-http source code link fails with no side effects", func(t *testing.T) {
		svc, store, uploader := setupService(t)

		in := validInput()
		in.SourceCodeLink = "ftp://x"
		_, err := svc.Create(ctx, "owner-1", in, nil, nil)

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Empty(t, uploader.uploaded)
		assert.Empty(t, store.owner("owner-1"))
	})

	t.Run("end date before start date fails", func(t *testing.T) {
		svc, _, _ := setupService(t)

		in := validInput()
		in.StartDate = "2024-06-01"
		in.EndDate = "2024-01-01"
		_, err := svc.Create(ctx, "owner-1", in, nil, nil)

		require.Error(t, err)
		assert.Equal(t, "End date must be after start date", err.Error())
	})

	t.Run("missing owner fails with auth error", func(t *testing.T) {
		svc, _, _ := setupService(t)

		_, err := svc.Create(ctx, "", validInput(), nil, nil)
		assert.Equal(t, domain.ErrAuthRequired, err)
	})

	t.Run("uploads thumbnail and previews in submission order", func(t *testing.T) {
		svc, _, uploader := setupService(t)

		thumb := validImage(t, "cover.png")
		previews := []media.Upload{validImage(t, "a.png"), validImage(t, "b.png"), validImage(t, "c.png")}

		p, err := svc.Create(ctx, "owner-1", validInput(), &thumb, previews)
		require.NoError(t, err)

		require.Len(t, uploader.uploaded, 4)
		assert.Contains(t, uploader.uploaded[0], "thumbnails/owner-1/")
		assert.NotEmpty(t, p.ThumbnailURL)

		require.Len(t, p.PreviewImageURLs, 3)
		for i, url := range p.PreviewImageURLs {
			assert.Contains(t, url, "previews/owner-1/")
			assert.Contains(t, url, uploader.uploaded[i+1])
		}
	})

	t.Run("invalid preview rejects before any upload", func(t *testing.T) {
		svc, _, uploader := setupService(t)

		bad := media.Upload{Name: "bad.png", MIME: "image/png", Data: []byte("junk")}
		_, err := svc.Create(ctx, "owner-1", validInput(), nil, []media.Upload{validImage(t, "ok.png"), bad})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Empty(t, uploader.uploaded)
	})

	t.Run("thumbnail upload failure aborts with no document write", func(t *testing.T) {
		svc, store, uploader := setupService(t)
		uploader.failWith = fmt.Errorf("bucket unreachable")

		thumb := validImage(t, "cover.png")
		_, err := svc.Create(ctx, "owner-1", validInput(), &thumb, nil)

		require.Error(t, err)
		var ue *domain.UploadError
		assert.ErrorAs(t, err, &ue)
		assert.Empty(t, store.owner("owner-1"))
	})

	t.Run("persistence failure surfaces after uploads", func(t *testing.T) {
		svc, store, uploader := setupService(t)
		store.failWith = fmt.Errorf("firestore down")

		thumb := validImage(t, "cover.png")
		_, err := svc.Create(ctx, "owner-1", validInput(), &thumb, nil)

		require.Error(t, err)
		var pe *domain.PersistenceError
		assert.ErrorAs(t, err, &pe)
		// The uploaded object is orphaned, not rolled back.
		assert.Len(t, uploader.uploaded, 1)
	})

	t.Run("unknown platform defaults to web", func(t *testing.T) {
		svc, _, _ := setupService(t)

		in := validInput()
		in.Platform = "smartwatch"
		p, err := svc.Create(ctx, "owner-1", in, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.PlatformWeb, p.Platform)
		assert.Equal(t, domain.PlatformWeb.Icon(), p.PlatformIcon)
	})

	t.Run("stores the platform icon alongside the platform", func(t *testing.T) {
		svc, _, _ := setupService(t)

		in := validInput()
		in.Platform = "mobile"
		p, err := svc.Create(ctx, "owner-1", in, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.PlatformMobile, p.Platform)
		assert.Equal(t, domain.PlatformMobile.Icon(), p.PlatformIcon)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc *ProjectService) *domain.Project {
		t.Helper()
		thumb := validImage(t, "cover.png")
		p, err := svc.Create(ctx, "owner-1", validInput(), &thumb, nil)
		require.NoError(t, err)
		return p
	}

	t.Run("keeps thumbnail when no new file is supplied", func(t *testing.T) {
		svc, _, _ := setupService(t)
		p := create(t, svc)

		in := validInput()
		in.Title = "Renamed"
		updated, err := svc.Update(ctx, "owner-1", p.ID, in, nil, nil, p.PreviewImageURLs)
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, p.ThumbnailURL, updated.ThumbnailURL)
		assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	})

	t.Run("replaces thumbnail when a new file is supplied", func(t *testing.T) {
		svc, _, _ := setupService(t)
		p := create(t, svc)

		thumb := validImage(t, "newcover.png")
		updated, err := svc.Update(ctx, "owner-1", p.ID, validInput(), &thumb, nil, nil)
		require.NoError(t, err)
		assert.NotEqual(t, p.ThumbnailURL, updated.ThumbnailURL)
	})

	t.Run("appends new previews to caller-supplied existing URLs", func(t *testing.T) {
		svc, _, _ := setupService(t)
		p := create(t, svc)

		existing := []string{"https://storage.example.com/bucket/previews/owner-1/old.png"}
		previews := []media.Upload{validImage(t, "new1.png"), validImage(t, "new2.png")}

		updated, err := svc.Update(ctx, "owner-1", p.ID, validInput(), nil, previews, existing)
		require.NoError(t, err)

		require.Len(t, updated.PreviewImageURLs, 3)
		assert.Equal(t, existing[0], updated.PreviewImageURLs[0])
	})

	t.Run("removal by omission drops existing URLs", func(t *testing.T) {
		svc, _, _ := setupService(t)
		p := create(t, svc)

		updated, err := svc.Update(ctx, "owner-1", p.ID, validInput(), nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, updated.PreviewImageURLs)
	})

	t.Run("preview cap rejected before any upload", func(t *testing.T) {
		svc, _, uploader := setupService(t)
		p := create(t, svc)
		uploadsBefore := len(uploader.uploaded)

		existing := make([]string, 9)
		for i := range existing {
			existing[i] = fmt.Sprintf("https://storage.example.com/bucket/previews/owner-1/p%d.png", i)
		}
		previews := []media.Upload{validImage(t, "a.png"), validImage(t, "b.png"), validImage(t, "c.png")}

		_, err := svc.Update(ctx, "owner-1", p.ID, validInput(), nil, previews, existing)
		require.Error(t, err)
		assert.Equal(t, "Total preview images cannot exceed 10", err.Error())
		assert.Len(t, uploader.uploaded, uploadsBefore)

		// Stored record is untouched.
		got, err := svc.Get(ctx, "owner-1", p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Title, got.Title)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc, _, _ := setupService(t)

		_, err := svc.Update(ctx, "owner-1", "missing", validInput(), nil, nil, nil)
		assert.Equal(t, domain.ErrNotFound, err)
	})

	t.Run("refreshes updatedAt only", func(t *testing.T) {
		svc, _, _ := setupService(t)
		p := create(t, svc)

		later := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return later }

		updated, err := svc.Update(ctx, "owner-1", p.ID, validInput(), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, p.CreatedAt, updated.CreatedAt)
		assert.Equal(t, later, updated.UpdatedAt)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes exactly one record", func(t *testing.T) {
		svc, _, _ := setupService(t)

		first, err := svc.Create(ctx, "owner-1", validInput(), nil, nil)
		require.NoError(t, err)
		second, err := svc.Create(ctx, "owner-1", validInput(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, "owner-1", first.ID))

		_, err = svc.Get(ctx, "owner-1", first.ID)
		assert.Equal(t, domain.ErrNotFound, err)

		_, err = svc.Get(ctx, "owner-1", second.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc, _, _ := setupService(t)
		assert.Equal(t, domain.ErrNotFound, svc.Delete(ctx, "owner-1", "missing"))
	})

	t.Run("missing owner fails with auth error", func(t *testing.T) {
		svc, _, _ := setupService(t)
		assert.Equal(t, domain.ErrAuthRequired, svc.Delete(ctx, "", "any"))
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("empty owner namespace lists no projects", func(t *testing.T) {
		svc, _, _ := setupService(t)

		projects, err := svc.List(ctx, "owner-1")
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("lists created projects", func(t *testing.T) {
		svc, _, _ := setupService(t)

		_, err := svc.Create(ctx, "owner-1", validInput(), nil, nil)
		require.NoError(t, err)

		projects, err := svc.List(ctx, "owner-1")
		require.NoError(t, err)
		assert.Len(t, projects, 1)
	})
}
