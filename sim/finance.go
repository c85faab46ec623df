package sim

// FinanceParameters holds baseline drivers and annual change factors for the
// education-finance sector. AnnualFundingChangeFactor is signed: funding
// adequacy is the only indicator across all sectors whose trend can reverse.
type FinanceParameters struct {
	RevenueGeneration    map[string]float64
	AllocationMechanisms map[string]float64
	ExpenditurePatterns  map[string]float64
	EfficiencyMeasures   map[string]float64

	AnnualFundingChangeFactor              float64
	AnnualEfficiencyImprovementFactor      float64
	AnnualManagementImprovementFactor      float64
	AnnualAlternativeFinancingGrowthFactor float64
}

// FinanceState tracks four financing indicators in [0,1].
type FinanceState struct {
	FundingAdequacy      float64
	AllocationEfficiency float64
	FinancialManagement  float64
	AlternativeFinancing float64
}

// FinanceModel projects education financing and resource utilization.
type FinanceModel struct {
	Params FinanceParameters
	State  FinanceState
}

func NewFinanceModel(params FinanceParameters) *FinanceModel {
	return &FinanceModel{Params: params}
}

// ComputeInitialState derives year-0 values. Funding adequacy is driven by
// budget share with deliberately weak 0.05 modifiers; the rest use 0.1.
func (m *FinanceModel) ComputeInitialState() {
	p := m.Params

	budget := driver(p.RevenueGeneration, "budget_share", 0)
	equitable := driver(p.AllocationMechanisms, "equitable_distribution", 0)
	utilization := driver(p.EfficiencyMeasures, "resource_utilization", 0)
	m.State.FundingAdequacy = clip01(budget * (1 + equitable*0.05) * (1 + utilization*0.05))

	targeting := driver(p.AllocationMechanisms, "targeting_accuracy", 0)
	priorities := driver(p.ExpenditurePatterns, "priority_alignment", 0)
	stability := driver(p.RevenueGeneration, "funding_stability", 0)
	m.State.AllocationEfficiency = clip01(targeting * (1 + priorities*0.1) * (1 + stability*0.1))

	execution := driver(p.EfficiencyMeasures, "budget_execution", 0)
	transparency := driver(p.AllocationMechanisms, "transparency", 0)
	accountability := driver(p.ExpenditurePatterns, "accountability", 0)
	m.State.FinancialManagement = clip01(execution * (1 + transparency*0.1) * (1 + accountability*0.1))

	private := driver(p.RevenueGeneration, "private_sector", 0)
	partnerships := driver(p.AllocationMechanisms, "partnership_effectiveness", 0)
	recovery := driver(p.EfficiencyMeasures, "cost_recovery", 0)
	m.State.AlternativeFinancing = clip01(private * (1 + partnerships*0.1) * (1 + recovery*0.1))
}

// AdvanceYear advances the state one year. Funding adequacy moves additively
// by the signed change factor; the other three indicators improve with
// diminishing returns.
func (m *FinanceModel) AdvanceYear() {
	p := m.Params
	m.State.FundingAdequacy = clip01(m.State.FundingAdequacy + p.AnnualFundingChangeFactor)
	m.State.AllocationEfficiency = improve(m.State.AllocationEfficiency, p.AnnualEfficiencyImprovementFactor)
	m.State.FinancialManagement = improve(m.State.FinancialManagement, p.AnnualManagementImprovementFactor)
	m.State.AlternativeFinancing = improve(m.State.AlternativeFinancing, p.AnnualAlternativeFinancingGrowthFactor)
}

// Simulate runs the finance sector over years annual steps from a fresh
// initial state.
func (m *FinanceModel) Simulate(years int) *Table {
	t := NewTable("funding_adequacy", "allocation_efficiency", "financial_management", "alternative_financing")
	m.ComputeInitialState()
	t.AppendRow(0, m.State.FundingAdequacy, m.State.AllocationEfficiency, m.State.FinancialManagement, m.State.AlternativeFinancing)
	for year := 1; year < years; year++ {
		m.AdvanceYear()
		t.AppendRow(year, m.State.FundingAdequacy, m.State.AllocationEfficiency, m.State.FinancialManagement, m.State.AlternativeFinancing)
	}
	return t
}
