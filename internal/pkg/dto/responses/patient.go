package responses

import "time"

type PatientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	DocumentPhoto string    `json:"documentPhoto"`
	CreatedAt     time.Time `json:"createdAt"`
}
