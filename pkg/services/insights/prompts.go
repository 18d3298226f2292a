package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"github.com/tonyloki/-EcoSense-AI/pkg/services/analysis"
)

// SystemPrompt frames every generation request. Recommendations, never
// directives: decisions stay with administrators.
const SystemPrompt = `You are EcoSense AI, a sustainability decision-support system for educational institutions.
Your role is to:
1. Analyze resource consumption data and identify inefficiencies
2. Provide evidence-based explanations for consumption patterns
3. Suggest low-cost, practical interventions
4. Maintain transparency about your reasoning

Important: You provide recommendations, not enforcement. Decisions remain with administrators.
Focus on factual analysis, responsible suggestions, and ethical considerations.`

const electricityPrompt = `Analyze the following electricity consumption data and provide insights:

FACILITY DATA:
%s

CONSUMPTION STATISTICS:
- Total Consumption: %.2f kWh
- Average Consumption: %.2f kWh
- Peak Consumption: %.2f kWh
- Night-time Consumption: %.2f kWh (%.2f%% of total)
- Anomalies Detected: %d instances above threshold
- Trend: %s

ANOMALY DETAILS:
%s

Based on this data, provide:
1. Key findings about consumption patterns
2. Explanation of night-time usage and idle consumption
3. Facility-specific insights
4. Potential causes of anomalies
5. Sustainability recommendations (low-cost, practical)

Keep your response clear, factual, and actionable for campus decision-makers.`

const waterPrompt = `Analyze the following water consumption data and identify potential waste:

FACILITY DATA:
%s

CONSUMPTION STATISTICS:
- Total Consumption: %.2f gallons
- Average Consumption: %.2f gallons per hour
- Peak Consumption: %.2f gallons
- Night-time Consumption: %.2f gallons (%.2f%% of total)
- Anomalies Detected: %d instances
- Trend: %s

LEAK INDICATORS:
%s

Based on this analysis, provide:
1. Assessment of consumption patterns
2. Identification of potential leaks or continuous usage
3. Explanation of anomalies
4. Water conservation recommendations
5. Priority areas for immediate inspection
6. Long-term sustainability initiatives

Focus on practical, implementable solutions.`

const policyGroundedPrompt = `Using the following sustainability best practices and policies, provide contextualized recommendations:

SUSTAINABILITY POLICIES AND GUIDELINES:
%s

CURRENT SITUATION:
%s

ANALYSIS:
Align your recommendations with the provided policies and best practices. For each recommendation:
1. State the relevant policy or guideline
2. Explain how it applies to this situation
3. Suggest implementation steps
4. Identify potential challenges
5. Propose success metrics

This ensures recommendations are grounded in established sustainability frameworks.`

// FormatAnalysisPrompt builds the resource-appropriate analysis prompt from a
// finished analysis result.
func FormatAnalysisPrompt(result *domain.AnalysisResult) string {
	nightPercent := 0.0
	if total := result.Total; total > 0 {
		nightPercent = result.NightTotal / total * 100
	}

	if result.Resource == domain.ResourceWater {
		return fmt.Sprintf(waterPrompt,
			formatFacilityData(result),
			result.Total, result.Average, result.Peak, result.NightTotal, nightPercent,
			result.AnomalyCount, result.Trend,
			formatLeakData(result))
	}

	return fmt.Sprintf(electricityPrompt,
		formatFacilityData(result),
		result.Total, result.Average, result.Peak, result.NightTotal, nightPercent,
		result.AnomalyCount, result.Trend,
		formatAnomalyDetails(result))
}

// FormatPolicyGroundedPrompt wraps a situation analysis with retrieved policy
// context.
func FormatPolicyGroundedPrompt(policies []string, situation string) string {
	return fmt.Sprintf(policyGroundedPrompt, strings.Join(policies, "\n\n"), situation)
}

func formatFacilityData(result *domain.AnalysisResult) string {
	names := make([]string, 0, len(result.Facilities))
	for name := range result.Facilities {
		names = append(names, name)
	}
	sort.Strings(names)

	unit := result.Resource.Unit()
	var b strings.Builder
	for _, name := range names {
		rollup := result.Facilities[name]
		fmt.Fprintf(&b, "- %s: total %.2f %s, average %.2f %s, %d anomalies\n",
			name, rollup.Total, unit, rollup.Average, unit, rollup.AnomalyCount)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAnomalyDetails(result *domain.AnalysisResult) string {
	anomalies := analysis.Anomalies(result)
	if len(anomalies) == 0 {
		return "No anomalous readings."
	}
	const maxDetails = 10

	var b strings.Builder
	for i, r := range anomalies {
		if i == maxDetails {
			fmt.Fprintf(&b, "... and %d more\n", len(anomalies)-maxDetails)
			break
		}
		fmt.Fprintf(&b, "- %s %02d:00 at %s: %.2f %s (severity %.2f)\n",
			r.Timestamp.Format("2006-01-02"), r.Hour, r.Facility,
			r.Value, result.Resource.Unit(), r.AnomalySeverity)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatLeakData(result *domain.AnalysisResult) string {
	leaks, ok := result.Issues.(domain.LeakRiskReport)
	if !ok {
		return "No leak indicators computed."
	}
	if len(leaks.FacilitiesAtRisk) == 0 {
		return fmt.Sprintf("%d anomalous readings, no facility above the leak-risk threshold.", leaks.AnomalyCount)
	}
	return fmt.Sprintf("%d anomalous readings. Facilities at risk: %s. Leak probability: %s.",
		leaks.AnomalyCount, strings.Join(leaks.FacilitiesAtRisk, ", "), leaks.LeakProbability)
}
