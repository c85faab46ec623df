package sim

// AccessParameters holds the baseline drivers and annual change factors for
// the access sector. Driver groups are read-only for the lifetime of the
// model; absent drivers default to 0 at lookup time.
type AccessParameters struct {
	PopulationDemographics map[string]float64
	GeographicDistribution map[string]float64
	SocioeconomicFactors   map[string]float64
	InstitutionalCapacity  map[string]float64
	IncentivePrograms      map[string]float64
	PhysicalInfrastructure map[string]float64

	AnnualEnrollmentGrowthFactor      float64
	AnnualTransitionImprovementFactor float64
	AnnualDropoutReductionFactor      float64
}

// AccessState is the access sector's per-year state. All four indicators are
// bounded to [0,1] at every observable point.
type AccessState struct {
	PrimaryEnrollment   float64
	SecondaryTransition float64
	PrimaryDropout      float64
	SecondaryDropout    float64
}

// AccessModel projects enrollment, transition, and dropout dynamics.
type AccessModel struct {
	Params AccessParameters
	State  AccessState
}

func NewAccessModel(params AccessParameters) *AccessModel {
	return &AccessModel{Params: params}
}

// ComputeInitialState derives the year-0 indicator values from the baseline
// drivers. Idempotent: repeated calls reset to the same values.
func (m *AccessModel) ComputeInitialState() {
	p := m.Params

	base := driver(p.PopulationDemographics, "primary_age_population", 0)
	infra := driver(p.PhysicalInfrastructure, "school_density", 0)
	incentive := driver(p.IncentivePrograms, "stipend_coverage", 0)
	m.State.PrimaryEnrollment = clip01(base * (1 + infra*0.1) * (1 + incentive*0.1))

	transition := driver(p.InstitutionalCapacity, "secondary_schools", 0)
	income := driver(p.SocioeconomicFactors, "household_income", 0)
	transport := driver(p.GeographicDistribution, "transportation_access", 0)
	m.State.SecondaryTransition = clip01(transition * (1 + income*0.1) * (1 + transport*0.1))

	// Dropout risk amplifies poverty by poor school quality and is mitigated
	// by prevention programs; primary and secondary stages scale the shared
	// risk down and up respectively.
	poverty := driver(p.SocioeconomicFactors, "poverty_rate", 0)
	infraRisk := 1 - driver(p.PhysicalInfrastructure, "school_quality", 0)
	mitigation := driver(p.IncentivePrograms, "dropout_prevention", 0)
	risk := clip01(poverty * (1 + infraRisk*0.5) * (1 - mitigation*0.5))
	m.State.PrimaryDropout = clip01(risk * 0.8)
	m.State.SecondaryDropout = clip01(risk * 1.2)
}

// AdvanceYear advances the state by one year. Enrollment and transition grow
// with diminishing returns; dropout rates decay monotonically, the secondary
// stage at 0.8x the configured reduction factor.
func (m *AccessModel) AdvanceYear() {
	p := m.Params
	m.State.PrimaryEnrollment = improve(m.State.PrimaryEnrollment, p.AnnualEnrollmentGrowthFactor)
	m.State.SecondaryTransition = improve(m.State.SecondaryTransition, p.AnnualTransitionImprovementFactor)
	m.State.PrimaryDropout = decay(m.State.PrimaryDropout, p.AnnualDropoutReductionFactor)
	m.State.SecondaryDropout = decay(m.State.SecondaryDropout, p.AnnualDropoutReductionFactor*0.8)
}

// Simulate runs the access sector over years annual steps (years 0 through
// years-1) and returns the full time series. It always starts from a fresh
// initial state, so repeated invocations are independent and reproducible.
func (m *AccessModel) Simulate(years int) *Table {
	t := NewTable("primary_enrollment", "secondary_transition", "primary_dropout", "secondary_dropout")
	m.ComputeInitialState()
	t.AppendRow(0, m.State.PrimaryEnrollment, m.State.SecondaryTransition, m.State.PrimaryDropout, m.State.SecondaryDropout)
	for year := 1; year < years; year++ {
		m.AdvanceYear()
		t.AppendRow(year, m.State.PrimaryEnrollment, m.State.SecondaryTransition, m.State.PrimaryDropout, m.State.SecondaryDropout)
	}
	return t
}
