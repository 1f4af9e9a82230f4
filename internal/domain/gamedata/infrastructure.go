package gamedata

// habitationCapacity is the housing each infrastructure building provides
// per unit. STO provides storage instead and houses nobody.
var habitationCapacity = map[InfrastructureType]map[WorkforceType]int{
	InfraHB1: {WorkforcePioneer: 100},
	InfraHB2: {WorkforceSettler: 100},
	InfraHB3: {WorkforceTechnician: 100},
	InfraHB4: {WorkforceEngineer: 100},
	InfraHB5: {WorkforceScientist: 100},
	InfraHBB: {WorkforcePioneer: 75, WorkforceSettler: 75},
	InfraHBC: {WorkforceSettler: 75, WorkforceTechnician: 75},
	InfraHBM: {WorkforceTechnician: 75, WorkforceEngineer: 75},
	InfraHBL: {WorkforceEngineer: 75, WorkforceScientist: 75},
	InfraSTO: {},
}

// HabitationCapacity returns the housing one unit of the given
// infrastructure building provides for one workforce tier.
func HabitationCapacity(infra InfrastructureType, t WorkforceType) int {
	return habitationCapacity[infra][t]
}

// Storage sizing constants. Every planetary base starts with the core
// module store; each STO unit extends it.
const (
	BaseStorageWeight  = 1500.0
	BaseStorageVolume  = 1500.0
	STOStorageWeight   = 5000.0
	STOStorageVolume   = 5000.0
	CoreModuleArea     = 25
	BaseAreaPerPermit  = 250
	PermitMin          = 1
	PermitMax          = 3
	ExpertMin          = 0
	ExpertMax          = 5
)
