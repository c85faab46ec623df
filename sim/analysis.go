package sim

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Analysis is a flat mapping from metric key to value, produced by Analyze.
// Per-indicator keys come in "<sector>_<indicator>_mean" / "_std" form, in
// both the indicator's original casing and a normalized lowercase alias, so
// report consumers may look up either. Standard deviation over a one-sample
// (or empty) series is NaN, not an error.
type Analysis map[string]float64

// normalizeKey lowercases a metric key and replaces spaces with underscores,
// matching the lookup form downstream consumers use for display-cased
// teacher columns.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), " ", "_")
}

// Analyze computes, for every indicator column of every sector series, the
// mean and sample standard deviation across the horizon (year column
// excluded), plus a curated set of named KPIs. The input series are read
// only, never mutated.
func Analyze(results Results) Analysis {
	analysis := make(Analysis)

	for _, sector := range SectorOrder {
		table, ok := results[sector]
		if !ok || table == nil {
			continue
		}
		for _, column := range table.Columns {
			series := table.Column(column)
			mean := stat.Mean(series, nil)
			std := stat.StdDev(series, nil) // NaN when len(series) <= 1

			meanKey := fmt.Sprintf("%s_%s_mean", sector, column)
			stdKey := fmt.Sprintf("%s_%s_std", sector, column)
			analysis[meanKey] = mean
			analysis[normalizeKey(meanKey)] = mean
			analysis[stdKey] = std
			analysis[normalizeKey(stdKey)] = std
		}
	}

	for _, kpi := range kpiDefs {
		if table, ok := results[kpi.sector]; ok && table != nil {
			analysis[kpi.name] = stat.Mean(table.Column(kpi.column), nil)
		}
	}

	return analysis
}

// kpiDefs is the curated set of human-readable KPIs: plain means of the
// corresponding sector/indicator series.
var kpiDefs = []struct {
	name   string
	sector string
	column string
}{
	{"Average Teacher Quality", SectorTeachers, ColTeacherQuality},
	{"Average Teaching Effectiveness", SectorTeachers, ColTeachingEffectiveness},
	{"Average Teacher Motivation", SectorTeachers, ColTeacherMotivation},
	{"Average Leadership Effectiveness", SectorInstitutions, "leadership_effectiveness"},
	{"Average Community Engagement", SectorInstitutions, "community_engagement"},
	{"Average Curriculum Relevance", SectorCurriculum, "curriculum_relevance"},
	{"Average 21st Century Skills", SectorCurriculum, "21st_century_skills"},
	{"Average Digital Infrastructure", SectorEdTech, "digital_infrastructure"},
	{"Average Teacher Digital Competency", SectorEdTech, "teacher_digital_competency"},
	{"Average Funding Adequacy", SectorFinance, "funding_adequacy"},
	{"Average Allocation Efficiency", SectorFinance, "allocation_efficiency"},
}

// PrintSummary displays the curated KPIs grouped by sector at the end of a
// run.
func (a Analysis) PrintSummary() {
	fmt.Println("=== Simulation Summary ===")

	fmt.Println("--- Teacher Workforce ---")
	fmt.Printf("Average Teacher Quality Index       : %.3f\n", a["Average Teacher Quality"])
	fmt.Printf("Average Teaching Effectiveness Score: %.3f\n", a["Average Teaching Effectiveness"])
	fmt.Printf("Average Teacher Motivation Score    : %.3f\n", a["Average Teacher Motivation"])

	fmt.Println("--- Institutional Development ---")
	fmt.Printf("Average Leadership Effectiveness    : %.3f\n", a["Average Leadership Effectiveness"])
	fmt.Printf("Average Community Engagement        : %.3f\n", a["Average Community Engagement"])

	fmt.Println("--- Curriculum Development ---")
	fmt.Printf("Average Curriculum Relevance        : %.3f\n", a["Average Curriculum Relevance"])
	fmt.Printf("Average 21st Century Skills         : %.3f\n", a["Average 21st Century Skills"])

	fmt.Println("--- Educational Technology ---")
	fmt.Printf("Average Digital Infrastructure      : %.3f\n", a["Average Digital Infrastructure"])
	fmt.Printf("Average Teacher Digital Competency  : %.3f\n", a["Average Teacher Digital Competency"])

	fmt.Println("--- Educational Finance ---")
	fmt.Printf("Average Funding Adequacy            : %.3f\n", a["Average Funding Adequacy"])
	fmt.Printf("Average Allocation Efficiency       : %.3f\n", a["Average Allocation Efficiency"])
}
