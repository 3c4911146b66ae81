package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visibility controls who may read a diary record.
type Visibility string

const (
	// VisibilityPrivate restricts reads, updates and deletes to the owner.
	VisibilityPrivate Visibility = "private"

	// VisibilityPublic allows any caller to read the record.
	// Updates and deletes remain owner-only.
	VisibilityPublic Visibility = "public"
)

// Valid reports whether v is one of the supported visibility values.
func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}

// Record represents a single diary entry owned by exactly one user.
// The owner reference is immutable after creation.
type Record struct {
	// ID is the MongoDB document identifier of the record.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// OwnerID references the user that created the record.
	// Never changes after creation.
	OwnerID primitive.ObjectID `json:"owner_id" bson:"owner_id"`

	// Title is the record headline. Required on creation.
	Title string `json:"title" bson:"title"`

	// Content is the textual body of the record. Required on creation.
	Content string `json:"content" bson:"content"`

	// AssetURL is the URL under which the attached binary asset is served.
	// The asset belongs exclusively to this record and must not outlive it.
	AssetURL string `json:"asset_url" bson:"asset_url"`

	// Visibility is either "private" or "public".
	Visibility Visibility `json:"visibility" bson:"visibility"`

	// Analysis holds the optional AI enrichment produced from the uploaded
	// asset. Absent when the analysis service is not configured or failed.
	Analysis *AssetAnalysis `json:"analysis,omitempty" bson:"analysis,omitempty"`

	// CreatedAt is the record creation timestamp. Records are listed
	// newest-first by this field.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CollectionName returns the name of the MongoDB collection
// associated with the Record model.
func (r Record) CollectionName() string {
	return "records"
}

// AssetName extracts the stored asset file name from AssetURL.
// Returns an empty string if the record carries no asset.
func (r Record) AssetName() string {
	if r.AssetURL == "" {
		return ""
	}
	for i := len(r.AssetURL) - 1; i >= 0; i-- {
		if r.AssetURL[i] == '/' {
			return r.AssetURL[i+1:]
		}
	}
	return r.AssetURL
}

// RecordUpdate is a partial update of a record. Nil fields keep their prior
// value. The attached asset is deliberately not updatable: its lifecycle is
// bound to record creation and deletion only.
type RecordUpdate struct {
	Title      *string     `json:"title,omitempty"`
	Content    *string     `json:"content,omitempty"`
	Visibility *Visibility `json:"visibility,omitempty"`
}

// Empty reports whether the update carries no field changes.
func (u RecordUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Visibility == nil
}

// AssetUpload is the transport-independent form of an uploaded binary asset:
// the received bytes plus the metadata needed to derive a storage name.
type AssetUpload struct {
	// FileName is the client-supplied file name. Used only to preserve the
	// file extension; the storage name is derived server-side.
	FileName string

	// Data is the full asset payload.
	Data []byte
}

// AssetAnalysis is the result returned by the external AI analysis service
// for an uploaded image.
type AssetAnalysis struct {
	// GeneratedEntry is the diary text suggested by the analysis service.
	GeneratedEntry string `json:"generated_diary" bson:"generated_entry,omitempty"`

	// Species is the animal species detected on the image.
	Species string `json:"detected_species" bson:"species,omitempty"`

	// Action is the animal activity detected on the image.
	Action string `json:"detected_action" bson:"action,omitempty"`
}
