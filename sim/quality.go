package sim

// QualityParameters holds the baseline drivers and the single annual
// improvement factor for the learning-quality sector.
type QualityParameters struct {
	TeachingPractices        map[string]float64
	LearningEnvironments     map[string]float64
	AssessmentSystems        map[string]float64
	CurricularImplementation map[string]float64

	AnnualQualityImprovementFactor float64
}

// QualityState tracks four learning-achievement indicators in [0,1].
type QualityState struct {
	ReadingProficiency float64
	NumeracySkills     float64
	CriticalThinking   float64
	ScienceLiteracy    float64
}

// QualityModel projects learning-quality dimensions. All four indicators
// share one improvement factor and the diminishing-returns recurrence.
type QualityModel struct {
	Params QualityParameters
	State  QualityState
}

func NewQualityModel(params QualityParameters) *QualityModel {
	return &QualityModel{Params: params}
}

// ComputeInitialState derives year-0 values: each indicator takes an
// instruction-quality base amplified by two 0.1-weighted modifiers.
func (m *QualityModel) ComputeInitialState() {
	p := m.Params

	reading := driver(p.TeachingPractices, "reading_instruction_quality", 0)
	classroom := driver(p.LearningEnvironments, "classroom_quality", 0)
	readAssess := driver(p.AssessmentSystems, "reading_assessment_frequency", 0)
	m.State.ReadingProficiency = clip01(reading * (1 + classroom*0.1) * (1 + readAssess*0.1))

	math := driver(p.TeachingPractices, "math_instruction_quality", 0)
	mathCurr := driver(p.CurricularImplementation, "math_curriculum_quality", 0)
	mathAssess := driver(p.AssessmentSystems, "math_assessment_frequency", 0)
	m.State.NumeracySkills = clip01(math * (1 + mathCurr*0.1) * (1 + mathAssess*0.1))

	crit := driver(p.TeachingPractices, "critical_thinking_emphasis", 0)
	engagement := driver(p.LearningEnvironments, "student_engagement", 0)
	critCurr := driver(p.CurricularImplementation, "critical_thinking_integration", 0)
	m.State.CriticalThinking = clip01(crit * (1 + engagement*0.1) * (1 + critCurr*0.1))

	science := driver(p.TeachingPractices, "science_instruction_quality", 0)
	labs := driver(p.LearningEnvironments, "lab_facilities", 0)
	sciCurr := driver(p.CurricularImplementation, "science_curriculum_quality", 0)
	m.State.ScienceLiteracy = clip01(science * (1 + labs*0.1) * (1 + sciCurr*0.1))
}

// AdvanceYear applies the shared improvement factor with diminishing returns.
func (m *QualityModel) AdvanceYear() {
	f := m.Params.AnnualQualityImprovementFactor
	m.State.ReadingProficiency = improve(m.State.ReadingProficiency, f)
	m.State.NumeracySkills = improve(m.State.NumeracySkills, f)
	m.State.CriticalThinking = improve(m.State.CriticalThinking, f)
	m.State.ScienceLiteracy = improve(m.State.ScienceLiteracy, f)
}

// Simulate runs the quality sector over years annual steps from a fresh
// initial state.
func (m *QualityModel) Simulate(years int) *Table {
	t := NewTable("reading_proficiency", "numeracy_skills", "critical_thinking", "science_literacy")
	m.ComputeInitialState()
	t.AppendRow(0, m.State.ReadingProficiency, m.State.NumeracySkills, m.State.CriticalThinking, m.State.ScienceLiteracy)
	for year := 1; year < years; year++ {
		m.AdvanceYear()
		t.AppendRow(year, m.State.ReadingProficiency, m.State.NumeracySkills, m.State.CriticalThinking, m.State.ScienceLiteracy)
	}
	return t
}
