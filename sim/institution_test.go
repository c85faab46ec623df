package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testInstitutionParams() InstitutionParameters {
	return InstitutionParameters{
		GovernanceStructures: map[string]float64{"leadership_quality": 0.5, "community_participation": 0.5, "accountability": 0.4, "vision_alignment": 0.5},
		ManagementPractices:  map[string]float64{"strategic_planning": 0.5, "community_outreach": 0.4, "financial_management": 0.5, "staff_morale": 0.5},
		ResourceAllocation:   map[string]float64{"budget_management": 0.5, "resource_efficiency": 0.5},
		InstitutionalCulture: map[string]float64{"parent_involvement": 0.4, "school_climate": 0.5},

		AnnualLeadershipImprovementFactor:   0.005,
		AnnualEngagementImprovementFactor:   0.006,
		AnnualResourceUtilImprovementFactor: 0.004,
		AnnualCultureImprovementFactor:      0.003,
	}
}

func TestInstitutionModel_InitialState(t *testing.T) {
	m := NewInstitutionModel(testInstitutionParams())

	m.ComputeInitialState()

	// Leadership is the one indicator with a 0.2-weighted modifier
	assert.InDelta(t, 0.5*(1+0.5*0.2)*(1+0.5*0.1), m.State.LeadershipEffectiveness, 1e-12)
	assert.InDelta(t, 0.5*(1+0.4*0.1)*(1+0.4*0.1), m.State.CommunityEngagement, 1e-12)
	assert.InDelta(t, 0.5*(1+0.5*0.1)*(1+0.4*0.1), m.State.ResourceUtilization, 1e-12)
	assert.InDelta(t, 0.5*(1+0.5*0.1)*(1+0.5*0.1), m.State.InstitutionalCulture, 1e-12)
}

func TestInstitutionModel_Simulate_BoundedAndIncreasing(t *testing.T) {
	m := NewInstitutionModel(testInstitutionParams())
	series := m.Simulate(25)

	for _, col := range series.Columns {
		vals := series.Column(col)
		for i := 1; i < len(vals); i++ {
			assert.GreaterOrEqual(t, vals[i], vals[i-1], "%s decreased at year %d", col, i)
			assert.LessOrEqual(t, vals[i], 1.0)
			assert.GreaterOrEqual(t, vals[i], 0.0)
		}
	}
}

func TestInstitutionModel_ComputeInitialState_Idempotent(t *testing.T) {
	m := NewInstitutionModel(testInstitutionParams())
	m.ComputeInitialState()
	first := m.State

	m.ComputeInitialState()

	assert.Equal(t, first, m.State)
}
