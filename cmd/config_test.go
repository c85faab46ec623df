package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/edusim/edusim/sim"
)

func TestLoadScenario_BaselineFile(t *testing.T) {
	cfg, err := LoadScenario("../config/scenario.yaml")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.SimulationYears)
	assert.Equal(t, 0.98, cfg.PopulationDemographics["primary_age_population"])
	assert.Equal(t, 0.2, cfg.SocioeconomicFactors["poverty_rate"])
	assert.Equal(t, 45.0, cfg.TeacherParams.WorkloadFactors["average_hours"])

	require.NotNil(t, cfg.FinanceParams.AnnualFundingChangeFactor)
	assert.Equal(t, 0.01, *cfg.FinanceParams.AnnualFundingChangeFactor)

	// A loaded baseline must run end to end
	results := sim.NewSimulation(cfg).Run(0)
	assert.Equal(t, 10, results[sim.SectorAccess].Len())
	assert.Equal(t, 11, results[sim.SectorTeachers].Len())
}

func TestLoadScenario_EmptyPath_ZeroScenario(t *testing.T) {
	cfg, err := LoadScenario("")
	require.NoError(t, err)

	// Zero-value scenario: no drivers, all factors defaulted inside the engine
	assert.Nil(t, cfg.PopulationDemographics)
	assert.Nil(t, cfg.AccessParams.AnnualEnrollmentGrowthFactor)
	assert.Equal(t, sim.DefaultSimulationYears, sim.NewSimulation(cfg).Years)
}

func TestLoadScenario_UnknownKey_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation_years: 5\nnot_a_real_section:\n  x: 1\n"), 0o644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile_Errors(t *testing.T) {
	_, err := LoadScenario("does-not-exist.yaml")
	assert.Error(t, err)
}
