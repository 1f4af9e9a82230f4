package gamedata

// WorkforceType identifies one of the five workforce tiers.
type WorkforceType string

const (
	WorkforcePioneer    WorkforceType = "pioneer"
	WorkforceSettler    WorkforceType = "settler"
	WorkforceTechnician WorkforceType = "technician"
	WorkforceEngineer   WorkforceType = "engineer"
	WorkforceScientist  WorkforceType = "scientist"
)

// WorkforceTypes lists all workforce tiers in canonical order. Serialized
// plan data always carries one entry per tier in this order.
var WorkforceTypes = []WorkforceType{
	WorkforcePioneer,
	WorkforceSettler,
	WorkforceTechnician,
	WorkforceEngineer,
	WorkforceScientist,
}

// ExpertType identifies an expert specialization.
type ExpertType string

const (
	ExpertAgriculture        ExpertType = "Agriculture"
	ExpertChemistry          ExpertType = "Chemistry"
	ExpertConstruction       ExpertType = "Construction"
	ExpertElectronics        ExpertType = "Electronics"
	ExpertFoodIndustries     ExpertType = "Food_Industries"
	ExpertFuelRefining       ExpertType = "Fuel_Refining"
	ExpertManufacturing      ExpertType = "Manufacturing"
	ExpertMetallurgy         ExpertType = "Metallurgy"
	ExpertResourceExtraction ExpertType = "Resource_Extraction"
)

// ExpertTypes lists all expert specializations in canonical order.
var ExpertTypes = []ExpertType{
	ExpertAgriculture,
	ExpertChemistry,
	ExpertConstruction,
	ExpertElectronics,
	ExpertFoodIndustries,
	ExpertFuelRefining,
	ExpertManufacturing,
	ExpertMetallurgy,
	ExpertResourceExtraction,
}

// InfrastructureType identifies a non-production building sized by unit count.
type InfrastructureType string

const (
	InfraHB1 InfrastructureType = "HB1"
	InfraHB2 InfrastructureType = "HB2"
	InfraHB3 InfrastructureType = "HB3"
	InfraHB4 InfrastructureType = "HB4"
	InfraHB5 InfrastructureType = "HB5"
	InfraHBB InfrastructureType = "HBB"
	InfraHBC InfrastructureType = "HBC"
	InfraHBM InfrastructureType = "HBM"
	InfraHBL InfrastructureType = "HBL"
	InfraSTO InfrastructureType = "STO"
)

// InfrastructureTypes lists all infrastructure buildings in canonical order.
var InfrastructureTypes = []InfrastructureType{
	InfraHB1,
	InfraHB2,
	InfraHB3,
	InfraHB4,
	InfraHB5,
	InfraHBB,
	InfraHBC,
	InfraHBM,
	InfraHBL,
	InfraSTO,
}

// COGCProgram is a planet-wide program granting production bonuses, either
// to one expertise or to one workforce tier.
type COGCProgram string

const (
	COGCNone COGCProgram = "NONE"

	COGCAgriculture        COGCProgram = "AGRICULTURE"
	COGCChemistry          COGCProgram = "CHEMISTRY"
	COGCConstruction       COGCProgram = "CONSTRUCTION"
	COGCElectronics        COGCProgram = "ELECTRONICS"
	COGCFoodIndustries     COGCProgram = "FOOD_INDUSTRIES"
	COGCFuelRefining       COGCProgram = "FUEL_REFINING"
	COGCManufacturing      COGCProgram = "MANUFACTURING"
	COGCMetallurgy         COGCProgram = "METALLURGY"
	COGCResourceExtraction COGCProgram = "RESOURCE_EXTRACTION"

	COGCPioneers    COGCProgram = "PIONEERS"
	COGCSettlers    COGCProgram = "SETTLERS"
	COGCTechnicians COGCProgram = "TECHNICIANS"
	COGCEngineers   COGCProgram = "ENGINEERS"
	COGCScientists  COGCProgram = "SCIENTISTS"
)

// expertisePrograms maps an expertise to the COGC program boosting it.
var expertisePrograms = map[ExpertType]COGCProgram{
	ExpertAgriculture:        COGCAgriculture,
	ExpertChemistry:          COGCChemistry,
	ExpertConstruction:       COGCConstruction,
	ExpertElectronics:        COGCElectronics,
	ExpertFoodIndustries:     COGCFoodIndustries,
	ExpertFuelRefining:       COGCFuelRefining,
	ExpertManufacturing:      COGCManufacturing,
	ExpertMetallurgy:         COGCMetallurgy,
	ExpertResourceExtraction: COGCResourceExtraction,
}

// workforcePrograms maps a workforce tier to the COGC program boosting it.
var workforcePrograms = map[WorkforceType]COGCProgram{
	WorkforcePioneer:    COGCPioneers,
	WorkforceSettler:    COGCSettlers,
	WorkforceTechnician: COGCTechnicians,
	WorkforceEngineer:   COGCEngineers,
	WorkforceScientist:  COGCScientists,
}

// ProgramForExpertise returns the COGC program matching an expertise.
func ProgramForExpertise(e ExpertType) COGCProgram {
	return expertisePrograms[e]
}

// ProgramForWorkforce returns the COGC program matching a workforce tier.
func ProgramForWorkforce(w WorkforceType) COGCProgram {
	return workforcePrograms[w]
}
