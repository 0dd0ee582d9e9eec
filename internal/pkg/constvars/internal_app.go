package constvars

const (
	MongoCollectionPatients = "patients"
)

const (
	RedisKeyPatientList = "patients:all"
)

const (
	ResponseUnknown = "unknown"
)
