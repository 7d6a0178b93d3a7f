package intelligence

import (
	"fmt"
	"strings"

	"jeevanrakshak/models"
)

const priorityRubric = `Priority Classification Guidelines:
- HIGH: Immediate health risks, disease outbreaks, severe contamination, multiple people affected, typhoid/cholera/dysentery cases
- MEDIUM: Water quality concerns, infrastructure issues affecting supply, potential health risks, localized problems
- LOW: Minor issues, cosmetic concerns, non-urgent maintenance requests`

// BuildPriorityPrompt embeds the complaint fields verbatim together with the rubric.
func BuildPriorityPrompt(in models.ComplaintInput) string {
	urgency := string(in.UserUrgency)
	if urgency == "" {
		urgency = "Not specified"
	}

	var b strings.Builder
	b.WriteString("Analyze the following water/health complaint and determine its priority level (HIGH, MEDIUM, or LOW).\n\n")
	b.WriteString("Complaint Details:\n")
	fmt.Fprintf(&b, "- Type: %s\n", in.Type)
	fmt.Fprintf(&b, "- Zone: %s\n", in.Zone)
	fmt.Fprintf(&b, "- Address: %s\n", in.Address)
	fmt.Fprintf(&b, "- Description: %s\n", in.Description)
	fmt.Fprintf(&b, "- User Indicated Urgency: %s\n\n", urgency)
	b.WriteString(priorityRubric)
	b.WriteString("\n\nRespond with ONLY ONE WORD: HIGH, MEDIUM, or LOW")
	return b.String()
}

// ParsePriority looks for HIGH, then MEDIUM, then LOW anywhere in text,
// ignoring case. The first token found in that order wins, wherever it sits.
func ParsePriority(text string) (models.Priority, bool) {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "HIGH"):
		return models.PriorityHigh, true
	case strings.Contains(upper, "MEDIUM"):
		return models.PriorityMedium, true
	case strings.Contains(upper, "LOW"):
		return models.PriorityLow, true
	default:
		return "", false
	}
}

// FallbackPriority derives a priority from what the citizen said alone.
func FallbackPriority(urgency models.Urgency) models.Priority {
	switch urgency {
	case models.UrgencyCritical:
		return models.PriorityHigh
	case models.UrgencyLow:
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}
