package sim

// Display-cased column names for the teacher series. The teacher sector is
// the one sector whose consumers historically keyed on human-readable names,
// so the table keeps them verbatim.
const (
	ColTeacherQuality        = "Teacher Quality"
	ColTeachingEffectiveness = "Teaching Effectiveness"
	ColTeacherMotivation     = "Teacher Motivation"
	ColQualificationScore    = "Qualification Score"
	ColExperienceScore       = "Experience Score"
	ColPDEffectiveness       = "PD Effectiveness"
	ColWorkloadScore         = "Workload Score"
	ColMotivationScore       = "Motivation Score"
)

// TeacherParameters holds the workforce baseline drivers and the annual
// change factor of each of the five underlying scores.
type TeacherParameters struct {
	QualificationDistribution map[string]float64
	ExperienceLevels          map[string]float64
	ProfessionalDevelopment   map[string]float64
	WorkloadFactors           map[string]float64
	MotivationIndicators      map[string]float64

	AnnualQualificationImprovementFactor float64
	AnnualExperienceShiftFactor          float64
	AnnualPDEffectivenessIncrease        float64
	AnnualWorkloadChangeFactor           float64
	AnnualMotivationIncreaseFactor       float64
}

// TeacherState holds the five underlying scores plus the three composite
// indices recomputed from them every step. WorkloadScore is bounded to [0,2]
// (weekly hours normalized by 50, not a probability); everything else is in
// [0,1].
type TeacherState struct {
	QualificationScore float64
	ExperienceScore    float64
	PDEffectiveness    float64
	WorkloadScore      float64
	MotivationScore    float64

	TeacherQuality        float64
	TeachingEffectiveness float64
	TeacherMotivation     float64
}

// TeacherModel is the structurally distinct sector: instead of independent
// indicators it evolves five scalar drivers and derives three composite
// indices from them via fixed linear weightings.
type TeacherModel struct {
	Params TeacherParameters
	State  TeacherState
}

func NewTeacherModel(params TeacherParameters) *TeacherModel {
	m := &TeacherModel{Params: params}
	m.ComputeInitialState()
	return m
}

// teacherQuality is the weighted qualification/experience/PD index.
func teacherQuality(qualification, experience, pd float64) float64 {
	return clip01(0.4*qualification + 0.3*experience + 0.3*pd)
}

// teachingEffectiveness combines the quality index with motivation, less the
// workload penalty.
func teachingEffectiveness(quality, motivation, workload float64) float64 {
	return clip01(0.5*quality + 0.3*motivation - 0.2*workload)
}

// teacherMotivation uses the underlying satisfaction score as its base term,
// not the composite, so motivation feedback does not compound on itself.
func teacherMotivation(satisfaction, pd, workload float64) float64 {
	return clip01(0.6*satisfaction + 0.2*pd - 0.2*workload)
}

// ComputeInitialState derives the year-0 scores from the baseline drivers
// and recomputes the composites. Idempotent.
func (m *TeacherModel) ComputeInitialState() {
	p := m.Params
	m.State.PDEffectiveness = driver(p.ProfessionalDevelopment, "effectiveness", 0.5)
	m.State.WorkloadScore = clip(driver(p.WorkloadFactors, "average_hours", 40)/50, 0, 2)
	m.State.MotivationScore = driver(p.MotivationIndicators, "satisfaction_index", 0.6)
	m.State.QualificationScore = groupMean(p.QualificationDistribution)
	m.State.ExperienceScore = groupMean(p.ExperienceLevels)
	m.recomputeComposites()
}

func (m *TeacherModel) recomputeComposites() {
	s := &m.State
	s.TeacherQuality = teacherQuality(s.QualificationScore, s.ExperienceScore, s.PDEffectiveness)
	s.TeachingEffectiveness = teachingEffectiveness(s.TeacherQuality, s.MotivationScore, s.WorkloadScore)
	s.TeacherMotivation = teacherMotivation(s.MotivationScore, s.PDEffectiveness, s.WorkloadScore)
}

// AdvanceYear scales each underlying score by its own annual factor, clips
// to the declared bounds, then recomputes the composites from the post-clip
// scores.
func (m *TeacherModel) AdvanceYear() {
	p := m.Params
	s := &m.State
	s.QualificationScore = clip01(s.QualificationScore * (1 + p.AnnualQualificationImprovementFactor))
	s.ExperienceScore = clip01(s.ExperienceScore * (1 + p.AnnualExperienceShiftFactor))
	s.PDEffectiveness = clip01(s.PDEffectiveness * (1 + p.AnnualPDEffectivenessIncrease))
	s.WorkloadScore = clip(s.WorkloadScore*(1+p.AnnualWorkloadChangeFactor), 0, 2)
	s.MotivationScore = clip01(s.MotivationScore * (1 + p.AnnualMotivationIncreaseFactor))
	m.recomputeComposites()
}

// SimulateRange runs the workforce projection over the absolute year range
// [startYear, endYear], both inclusive. The model is reset to its initial
// state first, so re-simulating an existing instance always yields a fresh
// run.
func (m *TeacherModel) SimulateRange(startYear, endYear int) *Table {
	t := NewTable(
		ColTeacherQuality, ColTeachingEffectiveness, ColTeacherMotivation,
		ColQualificationScore, ColExperienceScore, ColPDEffectiveness,
		ColWorkloadScore, ColMotivationScore,
	)
	m.ComputeInitialState()
	for year := startYear; year <= endYear; year++ {
		s := m.State
		t.AppendRow(year,
			s.TeacherQuality, s.TeachingEffectiveness, s.TeacherMotivation,
			s.QualificationScore, s.ExperienceScore, s.PDEffectiveness,
			s.WorkloadScore, s.MotivationScore,
		)
		m.AdvanceYear()
	}
	return t
}
