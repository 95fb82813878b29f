// Package models defines the registration-request aggregate and its
// lifecycle. Statuses persist as small integers; the ordinal mapping below is
// stable and must not be reordered.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	dErrors "innflow/pkg/domain-errors"
)

// Status is the review lifecycle state of a registration request.
type Status int16

const (
	StatusPending Status = iota
	StatusUnderReview
	StatusApproved
	StatusRejected
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUnderReview:
		return "under_review"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int16(s))
	}
}

// ParseStatus maps the external name back onto a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "pending":
		return StatusPending, nil
	case "under_review":
		return StatusUnderReview, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return 0, dErrors.Newf(dErrors.CodeValidation, "unknown status %q", s)
	}
}

// Reviewed reports whether the request left the pre-review states.
func (s Status) Reviewed() bool {
	return s != StatusPending && s != StatusUnderReview
}

// ImageStatus is the state of the image ingestion pipeline for a request.
type ImageStatus int16

const (
	ImagePending ImageStatus = iota
	ImageProcessing
	ImageCompleted
	ImageFailed
)

func (s ImageStatus) String() string {
	switch s {
	case ImagePending:
		return "pending"
	case ImageProcessing:
		return "processing"
	case ImageCompleted:
		return "completed"
	case ImageFailed:
		return "failed"
	default:
		return fmt.Sprintf("image_status(%d)", int16(s))
	}
}

// RegistrationRequest is the aggregate root of the onboarding workflow.
type RegistrationRequest struct {
	ID int64

	// Applicant
	FullName     string
	Email        string
	Phone        string
	PasswordHash string

	// Property
	PropertyName string
	Description  string
	Address      string
	Latitude     float64
	Longitude    float64
	BasePrice    float64
	MaxGuests    int
	Bedrooms     int
	Bathrooms    int
	DepartmentID int64
	UnitTypeID   int64

	// Media
	ImageKeys         []string
	ImageCount        int
	ImageStatus       ImageStatus
	ImageError        string
	ImagesProcessedAt *time.Time

	// Lifecycle
	Status          Status
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *int64
	RejectionReason string

	// Provisioning outcome, set only on approval.
	CreatedUserID     *int64
	CreatedPropertyID *int64
}

// CanReview guards the terminal transition: only Pending requests may be
// approved or rejected.
func (r *RegistrationRequest) CanReview() error {
	if r.Status != StatusPending {
		return dErrors.Newf(dErrors.CodeConflict, "request is already %s", r.Status)
	}
	return nil
}

// CanDelete forbids destroying provisioned requests.
func (r *RegistrationRequest) CanDelete() error {
	if r.Status == StatusApproved {
		return dErrors.New(dErrors.CodeConflict, "approved requests cannot be deleted")
	}
	return nil
}

// SetImages records a pipeline outcome, keeping the count mirror consistent
// with the key list.
func (r *RegistrationRequest) SetImages(keys []string, status ImageStatus, errSummary string, processedAt time.Time) {
	r.ImageKeys = append([]string(nil), keys...)
	r.ImageCount = len(keys)
	r.ImageStatus = status
	r.ImageError = errSummary
	at := processedAt
	r.ImagesProcessedAt = &at
}

// EncodeImageKeys renders the key list as the JSON array string stored in the
// image_keys column. An empty list encodes as "[]", never null.
func EncodeImageKeys(keys []string) (string, error) {
	if keys == nil {
		keys = []string{}
	}
	encoded, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("encode image keys: %w", err)
	}
	return string(encoded), nil
}

// DecodeImageKeys parses the stored JSON array string.
func DecodeImageKeys(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}
	var keys []string
	if err := json.Unmarshal([]byte(encoded), &keys); err != nil {
		return nil, fmt.Errorf("decode image keys: %w", err)
	}
	return keys, nil
}

// ImageIngestResult is the per-batch outcome returned to the applicant.
type ImageIngestResult struct {
	RequestID       int64
	Total           int
	Succeeded       int
	Failed          int
	FailedFilenames []string
	UploadedKeys    []string
	Status          ImageStatus
}

// ApprovalResult reports what approval provisioned.
type ApprovalResult struct {
	RequestID        int64
	UserID           int64
	UserEmail        string
	UserCreated      bool
	PropertyID       int64
	PropertyName     string
	WelcomeScheduled bool
	Warnings         []string
}

// RequestFilter narrows request listings. Nil fields are unconstrained.
type RequestFilter struct {
	Status       *Status
	DepartmentID *int64
	Limit        int
	Offset       int
}

// Statistics is the read-side aggregation over registration requests.
type Statistics struct {
	Total        int
	ByStatus     map[Status]int
	ByDepartment map[int64]int
	ByUnitType   map[int64]int
	Last7Days    int
	Last30Days   int
}
