package models

type RoleType string

const (
	RoleSuperAdmin      RoleType = "SUPER_ADMIN"
	RoleOrgAdmin        RoleType = "ORG_ADMIN"
	RoleEntityManager   RoleType = "ENTITY_MANAGER"
	RolePropertyManager RoleType = "PROPERTY_MANAGER"
	RoleAccountant      RoleType = "ACCOUNTANT"
	RoleMaintenance     RoleType = "MAINTENANCE"
	RoleTenant          RoleType = "TENANT"
)

type LeaseStatusType string

const (
	LeaseStatusDraft      LeaseStatusType = "DRAFT"
	LeaseStatusActive     LeaseStatusType = "ACTIVE"
	LeaseStatusEnded      LeaseStatusType = "ENDED"
	LeaseStatusTerminated LeaseStatusType = "TERMINATED"
)

type InvoiceStatusType string

const (
	InvoiceStatusDraft   InvoiceStatusType = "DRAFT"
	InvoiceStatusSent    InvoiceStatusType = "SENT"
	InvoiceStatusPaid    InvoiceStatusType = "PAID"
	InvoiceStatusOverdue InvoiceStatusType = "OVERDUE"
	InvoiceStatusVoid    InvoiceStatusType = "VOID"
)

type PaymentStatusType string

const (
	PaymentStatusPending   PaymentStatusType = "PENDING"
	PaymentStatusCompleted PaymentStatusType = "COMPLETED"
	PaymentStatusFailed    PaymentStatusType = "FAILED"
	PaymentStatusRefunded  PaymentStatusType = "REFUNDED"
)

type MaintenanceStatusType string

const (
	MaintenanceStatusOpen       MaintenanceStatusType = "OPEN"
	MaintenanceStatusInProgress MaintenanceStatusType = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatusType = "COMPLETED"
	MaintenanceStatusCanceled   MaintenanceStatusType = "CANCELED"
)

type MaintenancePriorityType string

const (
	MaintenancePriorityLow       MaintenancePriorityType = "LOW"
	MaintenancePriorityMedium    MaintenancePriorityType = "MEDIUM"
	MaintenancePriorityHigh      MaintenancePriorityType = "HIGH"
	MaintenancePriorityEmergency MaintenancePriorityType = "EMERGENCY"
)

type SpaceTypeType string

const (
	SpaceTypeApartment SpaceTypeType = "APARTMENT"
	SpaceTypeOffice    SpaceTypeType = "OFFICE"
	SpaceTypeRetail    SpaceTypeType = "RETAIL"
	SpaceTypeStorage   SpaceTypeType = "STORAGE"
	SpaceTypeParking   SpaceTypeType = "PARKING"
)

// MaintenanceStatuses and MaintenancePriorities enumerate every bucket a
// breakdown report must emit, including zero-count ones.
var MaintenanceStatuses = []MaintenanceStatusType{
	MaintenanceStatusOpen,
	MaintenanceStatusInProgress,
	MaintenanceStatusCompleted,
	MaintenanceStatusCanceled,
}

var MaintenancePriorities = []MaintenancePriorityType{
	MaintenancePriorityLow,
	MaintenancePriorityMedium,
	MaintenancePriorityHigh,
	MaintenancePriorityEmergency,
}
