package models

import (
	"patientdesk-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is the persisted registration record. Create-only: no update or
// delete path exists.
type Patient struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Phone         string             `bson:"phone"`
	DocumentPhoto string             `bson:"documentPhoto"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (p *Patient) ToResponse() responses.PatientResponse {
	return responses.PatientResponse{
		ID:            p.ID.Hex(),
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		DocumentPhoto: p.DocumentPhoto,
		CreatedAt:     p.CreatedAt,
	}
}
