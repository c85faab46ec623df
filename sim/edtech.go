package sim

// EdTechParameters holds baseline drivers and per-indicator annual
// improvement factors for the educational-technology sector.
type EdTechParameters struct {
	InfrastructureDevelopment map[string]float64
	TechnologyAccess          map[string]float64
	DigitalCapacity           map[string]float64
	PedagogicalIntegration    map[string]float64

	AnnualInfraImprovementFactor      float64
	AnnualCompetencyImprovementFactor float64
	AnnualContentImprovementFactor    float64
	AnnualAdoptionImprovementFactor   float64
}

// EdTechState tracks four technology-adoption indicators in [0,1].
type EdTechState struct {
	DigitalInfrastructure    float64
	TeacherDigitalCompetency float64
	DigitalContent           float64
	EmergingTechAdoption     float64
}

// EdTechModel projects technology adoption and its supporting capacity.
type EdTechModel struct {
	Params EdTechParameters
	State  EdTechState
}

func NewEdTechModel(params EdTechParameters) *EdTechModel {
	return &EdTechModel{Params: params}
}

// ComputeInitialState derives year-0 values. Infrastructure weights device
// availability at 0.2; the remaining modifiers use 0.1.
func (m *EdTechModel) ComputeInitialState() {
	p := m.Params

	connectivity := driver(p.InfrastructureDevelopment, "connectivity", 0)
	devices := driver(p.TechnologyAccess, "device_availability", 0)
	support := driver(p.DigitalCapacity, "technical_support", 0)
	m.State.DigitalInfrastructure = clip01(connectivity * (1 + devices*0.2) * (1 + support*0.1))

	training := driver(p.DigitalCapacity, "teacher_training", 0)
	integration := driver(p.PedagogicalIntegration, "tech_integration", 0)
	resources := driver(p.TechnologyAccess, "resource_availability", 0)
	m.State.TeacherDigitalCompetency = clip01(training * (1 + integration*0.1) * (1 + resources*0.1))

	platforms := driver(p.InfrastructureDevelopment, "content_platforms", 0)
	access := driver(p.TechnologyAccess, "content_access", 0)
	utilization := driver(p.PedagogicalIntegration, "content_utilization", 0)
	m.State.DigitalContent = clip01(platforms * (1 + access*0.1) * (1 + utilization*0.1))

	readiness := driver(p.InfrastructureDevelopment, "innovation_readiness", 0)
	expertise := driver(p.DigitalCapacity, "technical_expertise", 0)
	practices := driver(p.PedagogicalIntegration, "innovative_practices", 0)
	m.State.EmergingTechAdoption = clip01(readiness * (1 + expertise*0.1) * (1 + practices*0.1))
}

// AdvanceYear applies each indicator's improvement factor with diminishing
// returns.
func (m *EdTechModel) AdvanceYear() {
	p := m.Params
	m.State.DigitalInfrastructure = improve(m.State.DigitalInfrastructure, p.AnnualInfraImprovementFactor)
	m.State.TeacherDigitalCompetency = improve(m.State.TeacherDigitalCompetency, p.AnnualCompetencyImprovementFactor)
	m.State.DigitalContent = improve(m.State.DigitalContent, p.AnnualContentImprovementFactor)
	m.State.EmergingTechAdoption = improve(m.State.EmergingTechAdoption, p.AnnualAdoptionImprovementFactor)
}

// Simulate runs the edtech sector over years annual steps from a fresh
// initial state.
func (m *EdTechModel) Simulate(years int) *Table {
	t := NewTable("digital_infrastructure", "teacher_digital_competency", "digital_content", "emerging_tech_adoption")
	m.ComputeInitialState()
	t.AppendRow(0, m.State.DigitalInfrastructure, m.State.TeacherDigitalCompetency, m.State.DigitalContent, m.State.EmergingTechAdoption)
	for year := 1; year < years; year++ {
		m.AdvanceYear()
		t.AppendRow(year, m.State.DigitalInfrastructure, m.State.TeacherDigitalCompetency, m.State.DigitalContent, m.State.EmergingTechAdoption)
	}
	return t
}
