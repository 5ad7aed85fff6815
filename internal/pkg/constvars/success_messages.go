package constvars

const (
	RegisterSuccessMessage             = "User registered successfully"
	LoginSuccessMessage                = "Login successful"
	LogoutSuccessMessage               = "Logout successful"
	GetProfileSuccessMessage           = "Successfully retrieved user profile"
	GetClientsSuccessMessage           = "Successfully retrieved clients"
	GetClientSuccessMessage            = "Successfully retrieved client details"
	CreateClientSuccessMessage         = "Client created successfully"
	UpdateClientSuccessMessage         = "Client updated successfully"
	SearchClientsSuccessMessage        = "Successfully searched clients"
	GetProgramsSuccessMessage          = "Successfully retrieved programs"
	GetProgramSuccessMessage           = "Successfully retrieved program details"
	CreateProgramSuccessMessage        = "Program created successfully"
	UpdateProgramSuccessMessage        = "Program updated successfully"
	GetCategoriesSuccessMessage        = "Successfully retrieved program categories"
	GetEnrollmentsSuccessMessage       = "Successfully retrieved enrollments"
	EnrollClientSuccessMessage         = "Client enrolled successfully"
	TransitionEnrollmentSuccessMessage = "Enrollment status updated successfully"
)
