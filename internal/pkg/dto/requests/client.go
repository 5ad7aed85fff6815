package requests

type CreateClient struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address" validate:"omitempty,max=300"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateClient carries a partial document: empty fields keep their stored values.
type UpdateClient struct {
	FirstName   string `json:"firstName" validate:"omitempty,max=100"`
	LastName    string `json:"lastName" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address" validate:"omitempty,max=300"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}
