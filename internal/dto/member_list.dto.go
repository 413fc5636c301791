package dto

// MemberListDTO is the member list row joined with the current plan
// name, which the plain Member model cannot carry.
type MemberListDTO struct {
	ID                  uint    `json:"id"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	DateOfBirth         string  `json:"date_of_birth"`
	PhoneNumber         string  `json:"phone_number"`
	CurrentPlanID       *uint   `json:"current_plan_id"`
	PlanName            *string `json:"plan_name"`
	MembershipStatus    string  `json:"membership_status"`
	MembershipStartDate string  `json:"membership_start_date"`
}
