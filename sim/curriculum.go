package sim

// CurriculumParameters holds baseline drivers and per-indicator annual
// improvement factors for the curriculum sector.
type CurriculumParameters struct {
	ContentDevelopment   map[string]float64
	CompetencyFrameworks map[string]float64
	InstructionalMethods map[string]float64
	LearningMaterials    map[string]float64

	AnnualRelevanceImprovementFactor  float64
	AnnualSkillsImprovementFactor     float64
	AnnualMaterialsImprovementFactor  float64
	AnnualInnovationImprovementFactor float64
}

// CurriculumState tracks four curriculum indicators in [0,1].
type CurriculumState struct {
	CurriculumRelevance   float64
	TwentyFirstSkills     float64
	LearningMaterials     float64
	PedagogicalInnovation float64
}

// CurriculumModel projects curriculum evolution and instructional approaches.
type CurriculumModel struct {
	Params CurriculumParameters
	State  CurriculumState
}

func NewCurriculumModel(params CurriculumParameters) *CurriculumModel {
	return &CurriculumModel{Params: params}
}

// ComputeInitialState derives year-0 values; all modifiers use weight 0.1.
func (m *CurriculumModel) ComputeInitialState() {
	p := m.Params

	content := driver(p.ContentDevelopment, "content_quality", 0)
	alignment := driver(p.CompetencyFrameworks, "skill_alignment", 0)
	pedagogy := driver(p.InstructionalMethods, "pedagogical_effectiveness", 0)
	m.State.CurriculumRelevance = clip01(content * (1 + alignment*0.1) * (1 + pedagogy*0.1))

	critical := driver(p.CompetencyFrameworks, "critical_thinking", 0)
	digital := driver(p.ContentDevelopment, "digital_literacy", 0)
	collab := driver(p.InstructionalMethods, "collaborative_learning", 0)
	m.State.TwentyFirstSkills = clip01(critical * (1 + digital*0.1) * (1 + collab*0.1))

	textbooks := driver(p.LearningMaterials, "textbook_quality", 0)
	supplementary := driver(p.ContentDevelopment, "supplementary_materials", 0)
	utilization := driver(p.InstructionalMethods, "resource_utilization", 0)
	m.State.LearningMaterials = clip01(textbooks * (1 + supplementary*0.1) * (1 + utilization*0.1))

	active := driver(p.InstructionalMethods, "active_learning", 0)
	digitalContent := driver(p.ContentDevelopment, "digital_content", 0)
	assessInnov := driver(p.CompetencyFrameworks, "assessment_innovation", 0)
	m.State.PedagogicalInnovation = clip01(active * (1 + digitalContent*0.1) * (1 + assessInnov*0.1))
}

// AdvanceYear applies each indicator's improvement factor with diminishing
// returns.
func (m *CurriculumModel) AdvanceYear() {
	p := m.Params
	m.State.CurriculumRelevance = improve(m.State.CurriculumRelevance, p.AnnualRelevanceImprovementFactor)
	m.State.TwentyFirstSkills = improve(m.State.TwentyFirstSkills, p.AnnualSkillsImprovementFactor)
	m.State.LearningMaterials = improve(m.State.LearningMaterials, p.AnnualMaterialsImprovementFactor)
	m.State.PedagogicalInnovation = improve(m.State.PedagogicalInnovation, p.AnnualInnovationImprovementFactor)
}

// Simulate runs the curriculum sector over years annual steps from a fresh
// initial state.
func (m *CurriculumModel) Simulate(years int) *Table {
	t := NewTable("curriculum_relevance", "21st_century_skills", "learning_materials", "pedagogical_innovation")
	m.ComputeInitialState()
	t.AppendRow(0, m.State.CurriculumRelevance, m.State.TwentyFirstSkills, m.State.LearningMaterials, m.State.PedagogicalInnovation)
	for year := 1; year < years; year++ {
		m.AdvanceYear()
		t.AppendRow(year, m.State.CurriculumRelevance, m.State.TwentyFirstSkills, m.State.LearningMaterials, m.State.PedagogicalInnovation)
	}
	return t
}
