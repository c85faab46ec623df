package sim

// Config is the decoded scenario: per-sector baseline driver groups plus
// optional annual-change-factor overrides. Every field may be absent from
// the YAML scenario; missing driver groups resolve to empty maps and missing
// factors to the documented defaults in the factor structs below, so a
// zero-value Config is a valid (if inert) scenario.
type Config struct {
	SimulationYears int `yaml:"simulation_years"`

	// Access drivers.
	PopulationDemographics map[string]float64 `yaml:"population_demographics"`
	GeographicDistribution map[string]float64 `yaml:"geographic_distribution"`
	SocioeconomicFactors   map[string]float64 `yaml:"socioeconomic_factors"`
	InstitutionalCapacity  map[string]float64 `yaml:"institutional_capacity"`
	IncentivePrograms      map[string]float64 `yaml:"incentive_programs"`
	PhysicalInfrastructure map[string]float64 `yaml:"physical_infrastructure"`

	// Quality drivers.
	TeachingPractices        map[string]float64 `yaml:"teaching_practices"`
	LearningEnvironments     map[string]float64 `yaml:"learning_environments"`
	AssessmentSystems        map[string]float64 `yaml:"assessment_systems"`
	CurricularImplementation map[string]float64 `yaml:"curricular_implementation"`

	// Institution drivers.
	GovernanceStructures map[string]float64 `yaml:"governance_structures"`
	ManagementPractices  map[string]float64 `yaml:"management_practices"`
	ResourceAllocation   map[string]float64 `yaml:"resource_allocation"`
	InstitutionalCulture map[string]float64 `yaml:"institutional_culture"`

	// Curriculum drivers.
	ContentDevelopment   map[string]float64 `yaml:"content_development"`
	CompetencyFrameworks map[string]float64 `yaml:"competency_frameworks"`
	InstructionalMethods map[string]float64 `yaml:"instructional_methods"`
	LearningMaterials    map[string]float64 `yaml:"learning_materials"`

	// EdTech drivers.
	InfrastructureDevelopment map[string]float64 `yaml:"infrastructure_development"`
	TechnologyAccess          map[string]float64 `yaml:"technology_access"`
	DigitalCapacity           map[string]float64 `yaml:"digital_capacity"`
	PedagogicalIntegration    map[string]float64 `yaml:"pedagogical_integration"`

	// Finance drivers.
	RevenueGeneration    map[string]float64 `yaml:"revenue_generation"`
	AllocationMechanisms map[string]float64 `yaml:"allocation_mechanisms"`
	ExpenditurePatterns  map[string]float64 `yaml:"expenditure_patterns"`
	EfficiencyMeasures   map[string]float64 `yaml:"efficiency_measures"`

	// Workforce context groups carried by survey scenarios. Not consumed by
	// any model directly but accepted so complete scenario files parse under
	// strict field checking.
	RecruitmentPatterns     map[string]float64 `yaml:"recruitment_patterns"`
	PreparationQuality      map[string]float64 `yaml:"preparation_quality"`
	ProfessionalDevelopment map[string]float64 `yaml:"professional_development"`
	WorkingConditions       map[string]float64 `yaml:"working_conditions"`

	AccessParams      AccessFactors      `yaml:"access_params"`
	QualityParams     QualityFactors     `yaml:"quality_params"`
	TeacherParams     TeacherScenario    `yaml:"teacher_params"`
	InstitutionParams InstitutionFactors `yaml:"institution_params"`
	CurriculumParams  CurriculumFactors  `yaml:"curriculum_params"`
	EdTechParams      EdTechFactors      `yaml:"edtech_params"`
	FinanceParams     FinanceFactors     `yaml:"finance_params"`
}

// Factor override blocks. Fields are pointers so an absent key is
// distinguishable from an explicit zero; factorOr applies the documented
// default when the pointer is nil.

type AccessFactors struct {
	AnnualEnrollmentGrowthFactor      *float64 `yaml:"annual_enrollment_growth_factor"`      // default 0.005
	AnnualTransitionImprovementFactor *float64 `yaml:"annual_transition_improvement_factor"` // default 0.007
	AnnualDropoutReductionFactor      *float64 `yaml:"annual_dropout_reduction_factor"`      // default 0.01
}

type QualityFactors struct {
	AnnualQualityImprovementFactor *float64 `yaml:"annual_quality_improvement_factor"` // default 0.006
}

type InstitutionFactors struct {
	AnnualLeadershipImprovementFactor   *float64 `yaml:"annual_leadership_improvement_factor"`    // default 0.005
	AnnualEngagementImprovementFactor   *float64 `yaml:"annual_engagement_improvement_factor"`    // default 0.006
	AnnualResourceUtilImprovementFactor *float64 `yaml:"annual_resource_util_improvement_factor"` // default 0.004
	AnnualCultureImprovementFactor      *float64 `yaml:"annual_culture_improvement_factor"`       // default 0.003
}

type CurriculumFactors struct {
	AnnualRelevanceImprovementFactor  *float64 `yaml:"annual_relevance_improvement_factor"`  // default 0.008
	AnnualSkillsImprovementFactor     *float64 `yaml:"annual_skills_improvement_factor"`     // default 0.010
	AnnualMaterialsImprovementFactor  *float64 `yaml:"annual_materials_improvement_factor"`  // default 0.005
	AnnualInnovationImprovementFactor *float64 `yaml:"annual_innovation_improvement_factor"` // default 0.007
}

type EdTechFactors struct {
	AnnualInfraImprovementFactor      *float64 `yaml:"annual_infra_improvement_factor"`      // default 0.015
	AnnualCompetencyImprovementFactor *float64 `yaml:"annual_competency_improvement_factor"` // default 0.012
	AnnualContentImprovementFactor    *float64 `yaml:"annual_content_improvement_factor"`    // default 0.010
	AnnualAdoptionImprovementFactor   *float64 `yaml:"annual_adoption_improvement_factor"`   // default 0.008
}

type FinanceFactors struct {
	AnnualFundingChangeFactor              *float64 `yaml:"annual_funding_change_factor"`               // default 0.0, signed
	AnnualEfficiencyImprovementFactor      *float64 `yaml:"annual_efficiency_improvement_factor"`       // default 0.0
	AnnualManagementImprovementFactor      *float64 `yaml:"annual_management_improvement_factor"`       // default 0.0
	AnnualAlternativeFinancingGrowthFactor *float64 `yaml:"annual_alternative_financing_growth_factor"` // default 0.0
}

// TeacherScenario is the teacher sector's scenario block: unlike the other
// sectors its driver groups live inside the block rather than at top level.
type TeacherScenario struct {
	QualificationDistribution map[string]float64 `yaml:"qualification_distribution"`
	ExperienceLevels          map[string]float64 `yaml:"experience_levels"`
	ProfessionalDevelopment   map[string]float64 `yaml:"professional_development"`
	WorkloadFactors           map[string]float64 `yaml:"workload_factors"`
	MotivationIndicators      map[string]float64 `yaml:"motivation_indicators"`

	AnnualQualificationImprovementFactor *float64 `yaml:"annual_qualification_improvement_factor"` // default 0.01
	AnnualExperienceShiftFactor          *float64 `yaml:"annual_experience_shift_factor"`          // default 0.015
	AnnualPDEffectivenessIncrease        *float64 `yaml:"annual_pd_effectiveness_increase"`        // default 0.02
	AnnualWorkloadChangeFactor           *float64 `yaml:"annual_workload_change_factor"`           // default 0.005
	AnnualMotivationIncreaseFactor       *float64 `yaml:"annual_motivation_increase_factor"`       // default 0.01
}

// factorOr resolves an optional factor override against its default.
func factorOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
