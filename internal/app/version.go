package app

const (
	ServiceName = "schedule-service"
	Version     = "1.0.0"
)
