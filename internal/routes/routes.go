package routes

const (
	// Operational
	Health  = "/health"
	Metrics = "/metrics"

	// Auth
	AuthLogin = "/api/v1/auth/login"

	// Entity-scoped reports
	ReportProfitLoss  = "/api/v1/reports/entities/{entityId}/profit-loss"
	ReportOccupancy   = "/api/v1/reports/entities/{entityId}/occupancy"
	ReportMaintenance = "/api/v1/reports/entities/{entityId}/maintenance"
	ReportAging       = "/api/v1/reports/entities/{entityId}/aging"
	ReportDashboard   = "/api/v1/reports/entities/{entityId}/dashboard"

	// Spaces
	SpacesBase = "/api/v1/spaces"
	SpaceByID  = "/api/v1/spaces/{spaceId}"
)
