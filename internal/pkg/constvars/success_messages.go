package constvars

const (
	RegisterPatientSuccessMessage      = "Patient registered successfully!"
	FetchPatientsSuccessMessage        = "Patients fetched successfully!"
	FetchValidationRulesSuccessMessage = "Validation rules fetched successfully!"
)
