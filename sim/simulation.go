package sim

import (
	"github.com/sirupsen/logrus"
)

// Sector name keys used in Results and in analysis key prefixes.
const (
	SectorAccess       = "access"
	SectorQuality      = "quality"
	SectorTeachers     = "teachers"
	SectorInstitutions = "institutions"
	SectorCurriculum   = "curriculum"
	SectorEdTech       = "edtech"
	SectorFinance      = "finance"
)

// SectorOrder fixes the iteration order over Results for deterministic
// export and reporting.
var SectorOrder = []string{
	SectorAccess, SectorQuality, SectorTeachers, SectorInstitutions,
	SectorCurriculum, SectorEdTech, SectorFinance,
}

// DefaultSimulationYears is the horizon used when the scenario does not set
// simulation_years.
const DefaultSimulationYears = 25

// Results maps sector name to its simulated time series.
type Results map[string]*Table

// Simulation owns one instance of each of the seven sector models and drives
// them through the year horizon. The sectors are mutually independent: no
// model reads another's state during a run, so output is deterministic
// regardless of the order they are simulated in.
type Simulation struct {
	Config *Config
	Years  int

	Access       *AccessModel
	Quality      *QualityModel
	Teachers     *TeacherModel
	Institutions *InstitutionModel
	Curriculum   *CurriculumModel
	EdTech       *EdTechModel
	Finance      *FinanceModel
}

// NewSimulation extracts each sector's driver groups and annual factors from
// the scenario, applying the documented default for every absent factor, and
// constructs the seven models.
func NewSimulation(cfg *Config) *Simulation {
	years := cfg.SimulationYears
	if years <= 0 {
		years = DefaultSimulationYears
	}

	s := &Simulation{Config: cfg, Years: years}

	ap := cfg.AccessParams
	s.Access = NewAccessModel(AccessParameters{
		PopulationDemographics:            cfg.PopulationDemographics,
		GeographicDistribution:            cfg.GeographicDistribution,
		SocioeconomicFactors:              cfg.SocioeconomicFactors,
		InstitutionalCapacity:             cfg.InstitutionalCapacity,
		IncentivePrograms:                 cfg.IncentivePrograms,
		PhysicalInfrastructure:            cfg.PhysicalInfrastructure,
		AnnualEnrollmentGrowthFactor:      factorOr(ap.AnnualEnrollmentGrowthFactor, 0.005),
		AnnualTransitionImprovementFactor: factorOr(ap.AnnualTransitionImprovementFactor, 0.007),
		AnnualDropoutReductionFactor:      factorOr(ap.AnnualDropoutReductionFactor, 0.01),
	})

	s.Quality = NewQualityModel(QualityParameters{
		TeachingPractices:              cfg.TeachingPractices,
		LearningEnvironments:           cfg.LearningEnvironments,
		AssessmentSystems:              cfg.AssessmentSystems,
		CurricularImplementation:       cfg.CurricularImplementation,
		AnnualQualityImprovementFactor: factorOr(cfg.QualityParams.AnnualQualityImprovementFactor, 0.006),
	})

	tp := cfg.TeacherParams
	s.Teachers = NewTeacherModel(TeacherParameters{
		QualificationDistribution:            tp.QualificationDistribution,
		ExperienceLevels:                     tp.ExperienceLevels,
		ProfessionalDevelopment:              tp.ProfessionalDevelopment,
		WorkloadFactors:                      tp.WorkloadFactors,
		MotivationIndicators:                 tp.MotivationIndicators,
		AnnualQualificationImprovementFactor: factorOr(tp.AnnualQualificationImprovementFactor, 0.01),
		AnnualExperienceShiftFactor:          factorOr(tp.AnnualExperienceShiftFactor, 0.015),
		AnnualPDEffectivenessIncrease:        factorOr(tp.AnnualPDEffectivenessIncrease, 0.02),
		AnnualWorkloadChangeFactor:           factorOr(tp.AnnualWorkloadChangeFactor, 0.005),
		AnnualMotivationIncreaseFactor:       factorOr(tp.AnnualMotivationIncreaseFactor, 0.01),
	})

	ip := cfg.InstitutionParams
	s.Institutions = NewInstitutionModel(InstitutionParameters{
		GovernanceStructures:                cfg.GovernanceStructures,
		ManagementPractices:                 cfg.ManagementPractices,
		ResourceAllocation:                  cfg.ResourceAllocation,
		InstitutionalCulture:                cfg.InstitutionalCulture,
		AnnualLeadershipImprovementFactor:   factorOr(ip.AnnualLeadershipImprovementFactor, 0.005),
		AnnualEngagementImprovementFactor:   factorOr(ip.AnnualEngagementImprovementFactor, 0.006),
		AnnualResourceUtilImprovementFactor: factorOr(ip.AnnualResourceUtilImprovementFactor, 0.004),
		AnnualCultureImprovementFactor:      factorOr(ip.AnnualCultureImprovementFactor, 0.003),
	})

	cp := cfg.CurriculumParams
	s.Curriculum = NewCurriculumModel(CurriculumParameters{
		ContentDevelopment:                cfg.ContentDevelopment,
		CompetencyFrameworks:              cfg.CompetencyFrameworks,
		InstructionalMethods:              cfg.InstructionalMethods,
		LearningMaterials:                 cfg.LearningMaterials,
		AnnualRelevanceImprovementFactor:  factorOr(cp.AnnualRelevanceImprovementFactor, 0.008),
		AnnualSkillsImprovementFactor:     factorOr(cp.AnnualSkillsImprovementFactor, 0.010),
		AnnualMaterialsImprovementFactor:  factorOr(cp.AnnualMaterialsImprovementFactor, 0.005),
		AnnualInnovationImprovementFactor: factorOr(cp.AnnualInnovationImprovementFactor, 0.007),
	})

	ep := cfg.EdTechParams
	s.EdTech = NewEdTechModel(EdTechParameters{
		InfrastructureDevelopment:         cfg.InfrastructureDevelopment,
		TechnologyAccess:                  cfg.TechnologyAccess,
		DigitalCapacity:                   cfg.DigitalCapacity,
		PedagogicalIntegration:            cfg.PedagogicalIntegration,
		AnnualInfraImprovementFactor:      factorOr(ep.AnnualInfraImprovementFactor, 0.015),
		AnnualCompetencyImprovementFactor: factorOr(ep.AnnualCompetencyImprovementFactor, 0.012),
		AnnualContentImprovementFactor:    factorOr(ep.AnnualContentImprovementFactor, 0.010),
		AnnualAdoptionImprovementFactor:   factorOr(ep.AnnualAdoptionImprovementFactor, 0.008),
	})

	fp := cfg.FinanceParams
	s.Finance = NewFinanceModel(FinanceParameters{
		RevenueGeneration:                      cfg.RevenueGeneration,
		AllocationMechanisms:                   cfg.AllocationMechanisms,
		ExpenditurePatterns:                    cfg.ExpenditurePatterns,
		EfficiencyMeasures:                     cfg.EfficiencyMeasures,
		AnnualFundingChangeFactor:              factorOr(fp.AnnualFundingChangeFactor, 0.0),
		AnnualEfficiencyImprovementFactor:      factorOr(fp.AnnualEfficiencyImprovementFactor, 0.0),
		AnnualManagementImprovementFactor:      factorOr(fp.AnnualManagementImprovementFactor, 0.0),
		AnnualAlternativeFinancingGrowthFactor: factorOr(fp.AnnualAlternativeFinancingGrowthFactor, 0.0),
	})

	return s
}

// Run simulates every sector over the horizon and assembles the per-sector
// series. years <= 0 falls back to the configured horizon. The teacher
// sector runs over the absolute range [0, years] inclusive; the six generic
// sectors record years rows (0 through years-1).
func (s *Simulation) Run(years int) Results {
	if years <= 0 {
		years = s.Years
	}

	logrus.Infof("Running education simulation over %d years", years)

	results := Results{
		SectorAccess:       s.Access.Simulate(years),
		SectorQuality:      s.Quality.Simulate(years),
		SectorTeachers:     s.Teachers.SimulateRange(0, years),
		SectorInstitutions: s.Institutions.Simulate(years),
		SectorCurriculum:   s.Curriculum.Simulate(years),
		SectorEdTech:       s.EdTech.Simulate(years),
		SectorFinance:      s.Finance.Simulate(years),
	}

	for _, sector := range SectorOrder {
		logrus.Debugf("sector %s: %d rows, %d indicators", sector, results[sector].Len(), len(results[sector].Columns))
	}

	return results
}
