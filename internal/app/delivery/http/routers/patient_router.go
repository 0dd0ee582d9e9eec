package routers

import (
	"patientdesk-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRouter(router chi.Router, patientController *patients.PatientController) {
	router.Post("/patients", patientController.RegisterPatient)
	router.Get("/patients", patientController.GetPatients)
	router.Get("/patients/validation-rules", patientController.GetValidationRules)
}
