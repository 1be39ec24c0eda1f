package handler

import (
	"time"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// --- Request types ---

type createJobRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"    validate:"required,oneof=HVAC Plumbing Electrical Carpentry Painting Cleaning Security Landscaping 'General Maintenance'"`
	AssignedTo  string `json:"assigned_to" validate:"required"`
}

type updateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"    validate:"omitempty,oneof=HVAC Plumbing Electrical Carpentry Painting Cleaning Security Landscaping 'General Maintenance'"`
	AssignedTo  *string `json:"assigned_to"`
	Status      *string `json:"status"      validate:"omitempty,oneof=Pending Ongoing Completed"`
}

type updateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Ongoing Completed"`
}

// --- Response types ---

type jobResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	AssignedTo     string    `json:"assigned_to"`
	AssignedToName string    `json:"assigned_to_name"`
	AssignedBy     string    `json:"assigned_by"`
	Status         string    `json:"status"`
	DateCreated    time.Time `json:"date_created"`
	LastUpdated    time.Time `json:"last_updated"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Category:       string(j.Category),
		AssignedTo:     j.AssignedTo,
		AssignedToName: j.AssignedToName,
		AssignedBy:     j.AssignedBy,
		Status:         string(j.Status),
		DateCreated:    j.DateCreated,
		LastUpdated:    j.LastUpdated,
	}
}

type listJobsResponse struct {
	Data []jobResponse `json:"data"`
}

func toListJobsResponse(jobs []domain.Job) listJobsResponse {
	resp := listJobsResponse{Data: make([]jobResponse, 0, len(jobs))}
	for i := range jobs {
		resp.Data = append(resp.Data, toJobResponse(&jobs[i]))
	}
	return resp
}
