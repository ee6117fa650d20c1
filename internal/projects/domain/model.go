package domain

import "time"

// Project represents a single portfolio entry owned by a user. It is stored
// as a document in the owner's projects sub-collection; the document ID is
// assigned by the store on creation and never written back into the document.
type Project struct {
	ID               string            `firestore:"-" json:"id"`
	Title            string            `firestore:"title" json:"title"`
	Description      string            `firestore:"description" json:"description"`
	Platform         Platform          `firestore:"platform" json:"platform"`
	PlatformIcon     string            `firestore:"platformIcon" json:"platformIcon,omitempty"`
	Technologies     []string          `firestore:"technologies" json:"technologies"`
	TechnologyIcons  map[string]string `firestore:"technologyIcons" json:"technologyIcons,omitempty"`
	ThumbnailURL     string            `firestore:"thumbnailUrl" json:"thumbnailUrl,omitempty"`
	PreviewImageURLs []string          `firestore:"previewImageUrls" json:"previewImageUrls"`
	SourceCodeLink   string            `firestore:"sourceCodeLink" json:"sourceCodeLink,omitempty"`
	StartDate        string            `firestore:"startDate" json:"startDate,omitempty"`
	EndDate          string            `firestore:"endDate" json:"endDate,omitempty"`
	CreatedAt        time.Time         `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time         `firestore:"updatedAt" json:"updatedAt"`
}

// MaxPreviewImages caps the preview gallery per project.
const MaxPreviewImages = 10

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)
