package domain

import (
	"context"
	"time"
)

// MinAdmissionAge is the youngest age accepted by the admission form.
const MinAdmissionAge = 5

// Admission is a submitted admission form.
// swagger:model Admission
type Admission struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullname"`
	CivilIDNo string    `json:"civilIdNo"`
	DOB       time.Time `json:"dob"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Gender    string    `json:"gender"`
	Course    string    `json:"course"`
	Location  string    `json:"location"`
	School    string    `json:"school"`
	Grade     string    `json:"grade"`
	Respond   bool      `json:"respond"`
	CreatedAt time.Time `json:"created_at"`
}

// AgeOn returns the applicant's age in whole years on the given day.
func (a *Admission) AgeOn(day time.Time) int {
	return AgeOn(a.DOB, day)
}

// AgeOn returns the number of full years between dob and day.
func AgeOn(dob, day time.Time) int {
	if dob.IsZero() || day.Before(dob) {
		return 0
	}
	age := day.Year() - dob.Year()
	if day.Month() < dob.Month() || (day.Month() == dob.Month() && day.Day() < dob.Day()) {
		age--
	}
	return age
}

// AdmissionRepository defines the interface for admission storage.
type AdmissionRepository interface {
	Create(ctx context.Context, a *Admission) error
	List(ctx context.Context) ([]*Admission, error)
	SetRespond(ctx context.Context, id string, respond bool) (*Admission, error)
}

// AdmissionService defines the admission workflow.
type AdmissionService interface {
	// SubmitAdmission checks the minimum age and persists the form.
	SubmitAdmission(ctx context.Context, a *Admission) error
	// AcknowledgeAdmission schedules the acknowledgement email in the background.
	AcknowledgeAdmission(ctx context.Context, a *Admission)
	ListAdmissions(ctx context.Context) ([]*Admission, error)
	SetRespond(ctx context.Context, id string, respond bool) (*Admission, error)
}
