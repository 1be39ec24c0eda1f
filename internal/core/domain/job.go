package domain

import "time"

// JobStatus represents the lifecycle state of a maintenance job.
type JobStatus string

const (
	StatusPending   JobStatus = "Pending"
	StatusOngoing   JobStatus = "Ongoing"
	StatusCompleted JobStatus = "Completed"
)

// Statuses lists all job statuses. The state machine is fully connected:
// any status may move to any other, and none is terminal.
func Statuses() []JobStatus {
	return []JobStatus{StatusPending, StatusOngoing, StatusCompleted}
}

// ValidStatus reports whether s is a known job status.
func ValidStatus(s JobStatus) bool {
	switch s {
	case StatusPending, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// JobCategory is the fixed set of maintenance trades a job belongs to.
type JobCategory string

const (
	CategoryHVAC        JobCategory = "HVAC"
	CategoryPlumbing    JobCategory = "Plumbing"
	CategoryElectrical  JobCategory = "Electrical"
	CategoryCarpentry   JobCategory = "Carpentry"
	CategoryPainting    JobCategory = "Painting"
	CategoryCleaning    JobCategory = "Cleaning"
	CategorySecurity    JobCategory = "Security"
	CategoryLandscaping JobCategory = "Landscaping"
	CategoryGeneral     JobCategory = "General Maintenance"
)

// Categories lists all job categories.
func Categories() []JobCategory {
	return []JobCategory{
		CategoryHVAC, CategoryPlumbing, CategoryElectrical, CategoryCarpentry,
		CategoryPainting, CategoryCleaning, CategorySecurity, CategoryLandscaping,
		CategoryGeneral,
	}
}

// ValidCategory reports whether c is a known job category.
func ValidCategory(c JobCategory) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Job is the core aggregate of the system.
//
// AssignedTo references a User.ID but is not enforced as a foreign key:
// deleting a user leaves their jobs untouched. AssignedToName and AssignedBy
// are display-name snapshots taken at assignment/creation time and may go
// stale when the referenced user is later renamed.
type Job struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	Category       JobCategory `json:"category"`
	AssignedTo     string      `json:"assignedTo"`
	AssignedToName string      `json:"assignedToName"`
	AssignedBy     string      `json:"assignedBy"`
	Status         JobStatus   `json:"status"`
	DateCreated    time.Time   `json:"dateCreated"`
	LastUpdated    time.Time   `json:"lastUpdated"`
}
