package config

type InternalConfig struct {
	App App
}

type App struct {
	Env             string
	Port            string
	Timezone        string
	EndpointPrefix  string
	FrontendDomain  string
	ShutdownTimeout int

	// MailerQueue is the RabbitMQ queue name shared by the publisher and
	// the SMTP worker.
	MailerQueue string

	// PatientListCacheTTLInSeconds bounds the staleness of GET /patients.
	PatientListCacheTTLInSeconds int

	// EnforceUniqueEmail rejects a registration whose email already exists.
	// Off by default: duplicate registrations each create a distinct record.
	EnforceUniqueEmail bool
}
