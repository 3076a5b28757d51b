package services

import (
	"fmt"
	"strings"

	"github.com/rohits-web03/lessonplanner/internal/models"
)

// BuildPrompt asks for a Daily Lesson Log in the Philippine Department of
// Education format.
func BuildPrompt(grade, subject, topic string) string {
	return fmt.Sprintf(`Generate a detailed Daily Lesson Log (DLL) for a %s grade class, covering the subject of %s, with the main topic being %q. The lesson plan should follow the Philippine Department of Education format, including:
- Objectives (Content Standard, Performance Standard, Learning Competencies)
- Content
- Learning Resources
- Procedures (Review, Motivation, Activity, Analysis, Abstraction, Application, Assessment, Assignment, Concluding Activity)
- Remarks
- Reflection

Ensure the output is a complete, ready-to-use lesson plan.`, grade, subject, topic)
}

// RenderPlanDocument is the plain-text export of a stored plan.
func RenderPlanDocument(plan *models.LessonPlan) string {
	var b strings.Builder
	b.WriteString("Generated Lesson Plan\n\n")
	fmt.Fprintf(&b, "Grade Level: %s\n", orNA(plan.Grade))
	fmt.Fprintf(&b, "Subject: %s\n", orNA(plan.Subject))
	fmt.Fprintf(&b, "Topic / Lesson Title: %s\n", orNA(plan.Topic))
	if !plan.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Created: %s\n", plan.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))
	}
	b.WriteString("\n")
	b.WriteString(plan.PlanContent)
	if !strings.HasSuffix(plan.PlanContent, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
