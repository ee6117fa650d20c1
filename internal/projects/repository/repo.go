package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// ProjectRepository persists projects in per-owner Firestore sub-collections
// (users/{ownerID}/projects). Ownership is enforced by addressing records
// through the owner's namespace, not by a separate ACL check.
type ProjectRepository struct {
	client *firestore.Client
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(client *firestore.Client) *ProjectRepository {
	return &ProjectRepository{client: client}
}

func (r *ProjectRepository) col(ownerID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(ownerID).Collection("projects")
}

// Create writes a new project document and returns it with the
// store-assigned ID filled in.
func (r *ProjectRepository) Create(ctx context.Context, ownerID string, p *domain.Project) (*domain.Project, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id required")
	}

	ref := r.col(ownerID).NewDoc()
	if _, err := ref.Set(ctx, p); err != nil {
		return nil, err
	}

	created := *p
	created.ID = ref.ID
	return &created, nil
}

// Get returns a single project, or domain.ErrNotFound when no document with
// that ID exists under the owner.
func (r *ProjectRepository) Get(ctx context.Context, ownerID, id string) (*domain.Project, error) {
	snap, err := r.col(ownerID).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var p domain.Project
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

// List returns all projects for the owner, newest first. An owner with no
// projects yields an empty slice, not an error.
func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	iter := r.col(ownerID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = snap.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

// Update overwrites the project document's fields. Callers verify existence
// first; a Set on a missing document would otherwise create it.
func (r *ProjectRepository) Update(ctx context.Context, ownerID, id string, p *domain.Project) error {
	_, err := r.col(ownerID).Doc(id).Set(ctx, p)
	return err
}

// Delete removes the project document only. Storage objects referenced by
// the document are left in place.
func (r *ProjectRepository) Delete(ctx context.Context, ownerID, id string) error {
	ref := r.col(ownerID).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}
