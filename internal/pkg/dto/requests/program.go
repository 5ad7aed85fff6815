package requests

type CreateProgram struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"required,max=2000"`
	Duration    int    `json:"duration" validate:"omitempty,gte=0"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProgram carries a partial document: absent fields keep their stored
// values. Duration is a pointer so an explicit zero still counts as provided.
type UpdateProgram struct {
	Name        string `json:"name" validate:"omitempty,max=150"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Duration    *int   `json:"duration" validate:"omitempty,gte=0"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}
