package handler

import (
	"time"

	"innflow/internal/onboarding/models"
	"innflow/internal/onboarding/service"
)

type submitRequest struct {
	FullName     string  `json:"fullName" validate:"required,min=2,max=120"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required,min=6,max=32"`
	Password     string  `json:"password" validate:"required,min=8,max=72"`
	PropertyName string  `json:"propertyName" validate:"required,min=2,max=160"`
	Description  string  `json:"description" validate:"max=4000"`
	Address      string  `json:"address" validate:"required,max=300"`
	Latitude     float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" validate:"gte=-180,lte=180"`
	BasePrice    float64 `json:"basePrice" validate:"required,gt=0"`
	MaxGuests    int     `json:"maxGuests" validate:"required,gt=0,lte=50"`
	Bedrooms     int     `json:"bedrooms" validate:"gte=0,lte=50"`
	Bathrooms    int     `json:"bathrooms" validate:"gte=0,lte=50"`
	DepartmentID int64   `json:"departmentId" validate:"required,gt=0"`
	UnitTypeID   int64   `json:"unitTypeId" validate:"required,gt=0"`
}

func (r submitRequest) toSubmission() service.Submission {
	return service.Submission{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		Password:     r.Password,
		PropertyName: r.PropertyName,
		Description:  r.Description,
		Address:      r.Address,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		BasePrice:    r.BasePrice,
		MaxGuests:    r.MaxGuests,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		DepartmentID: r.DepartmentID,
		UnitTypeID:   r.UnitTypeID,
	}
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=1000"`
}

type requestResponse struct {
	ID                int64      `json:"id"`
	FullName          string     `json:"fullName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	PropertyName      string     `json:"propertyName"`
	Description       string     `json:"description"`
	Address           string     `json:"address"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	BasePrice         float64    `json:"basePrice"`
	MaxGuests         int        `json:"maxGuests"`
	Bedrooms          int        `json:"bedrooms"`
	Bathrooms         int        `json:"bathrooms"`
	DepartmentID      int64      `json:"departmentId"`
	UnitTypeID        int64      `json:"unitTypeId"`
	ImageKeys         []string   `json:"imageKeys"`
	ImageCount        int        `json:"imageCount"`
	ImageStatus       string     `json:"imageStatus"`
	ImageError        string     `json:"imageError,omitempty"`
	ImagesProcessedAt *time.Time `json:"imagesProcessedAt,omitempty"`
	Status            string     `json:"status"`
	SubmittedAt       time.Time  `json:"submittedAt"`
	ReviewedAt        *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy        *int64     `json:"reviewedBy,omitempty"`
	RejectionReason   string     `json:"rejectionReason,omitempty"`
	CreatedUserID     *int64     `json:"createdUserId,omitempty"`
	CreatedPropertyID *int64     `json:"createdPropertyId,omitempty"`
}

func toRequestResponse(r *models.RegistrationRequest) requestResponse {
	keys := r.ImageKeys
	if keys == nil {
		keys = []string{}
	}
	return requestResponse{
		ID:                r.ID,
		FullName:          r.FullName,
		Email:             r.Email,
		Phone:             r.Phone,
		PropertyName:      r.PropertyName,
		Description:       r.Description,
		Address:           r.Address,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		BasePrice:         r.BasePrice,
		MaxGuests:         r.MaxGuests,
		Bedrooms:          r.Bedrooms,
		Bathrooms:         r.Bathrooms,
		DepartmentID:      r.DepartmentID,
		UnitTypeID:        r.UnitTypeID,
		ImageKeys:         keys,
		ImageCount:        r.ImageCount,
		ImageStatus:       r.ImageStatus.String(),
		ImageError:        r.ImageError,
		ImagesProcessedAt: r.ImagesProcessedAt,
		Status:            r.Status.String(),
		SubmittedAt:       r.SubmittedAt,
		ReviewedAt:        r.ReviewedAt,
		ReviewedBy:        r.ReviewedBy,
		RejectionReason:   r.RejectionReason,
		CreatedUserID:     r.CreatedUserID,
		CreatedPropertyID: r.CreatedPropertyID,
	}
}

type ingestResponse struct {
	RequestID       int64    `json:"requestId"`
	Total           int      `json:"total"`
	Succeeded       int      `json:"succeeded"`
	Failed          int      `json:"failed"`
	FailedFilenames []string `json:"failedFilenames,omitempty"`
	UploadedKeys    []string `json:"uploadedKeys"`
	Status          string   `json:"status"`
}

func toIngestResponse(r *models.ImageIngestResult) ingestResponse {
	keys := r.UploadedKeys
	if keys == nil {
		keys = []string{}
	}
	return ingestResponse{
		RequestID:       r.RequestID,
		Total:           r.Total,
		Succeeded:       r.Succeeded,
		Failed:          r.Failed,
		FailedFilenames: r.FailedFilenames,
		UploadedKeys:    keys,
		Status:          r.Status.String(),
	}
}

type approvalResponse struct {
	RequestID        int64    `json:"requestId"`
	UserID           int64    `json:"userId"`
	UserEmail        string   `json:"userEmail"`
	UserCreated      bool     `json:"userCreated"`
	PropertyID       int64    `json:"propertyId"`
	PropertyName     string   `json:"propertyName"`
	WelcomeScheduled bool     `json:"welcomeScheduled"`
	Warnings         []string `json:"warnings,omitempty"`
}

func toApprovalResponse(r *models.ApprovalResult) approvalResponse {
	return approvalResponse{
		RequestID:        r.RequestID,
		UserID:           r.UserID,
		UserEmail:        r.UserEmail,
		UserCreated:      r.UserCreated,
		PropertyID:       r.PropertyID,
		PropertyName:     r.PropertyName,
		WelcomeScheduled: r.WelcomeScheduled,
		Warnings:         r.Warnings,
	}
}

type statisticsResponse struct {
	Total        int              `json:"total"`
	ByStatus     map[string]int   `json:"byStatus"`
	ByDepartment map[int64]int    `json:"byDepartment"`
	ByUnitType   map[int64]int    `json:"byUnitType"`
	Last7Days    int              `json:"last7Days"`
	Last30Days   int              `json:"last30Days"`
}

func toStatisticsResponse(s *models.Statistics) statisticsResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[status.String()] = n
	}
	return statisticsResponse{
		Total:        s.Total,
		ByStatus:     byStatus,
		ByDepartment: s.ByDepartment,
		ByUnitType:   s.ByUnitType,
		Last7Days:    s.Last7Days,
		Last30Days:   s.Last30Days,
	}
}
