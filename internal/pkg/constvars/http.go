package constvars

const (
	HeaderContentType = "Content-Type"
)

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest = 400

	StatusInternalServerError = 500
)
