package services

import (
	"slices"

	"github.com/rohits-web03/lessonplanner/internal/models"
)

var templateCatalog = []models.Template{
	{
		ID:          1,
		Name:        "Basic Math Lesson (Grade 3)",
		Grade:       "3",
		Subject:     "Mathematics",
		Topic:       "Addition of Whole Numbers",
		Description: "A foundational lesson plan for teaching basic addition concepts.",
	},
	{
		ID:          2,
		Name:        "Science Experiment (Grade 7)",
		Grade:       "7",
		Subject:     "Science",
		Topic:       "States of Matter",
		Description: "An interactive lesson plan focusing on the three states of matter through experiments.",
	},
	{
		ID:          3,
		Name:        "English Literature (Grade 10)",
		Grade:       "10",
		Subject:     "English",
		Topic:       "Analyzing Literary Devices in Poetry",
		Description: "A comprehensive plan for understanding and identifying literary devices in selected poems.",
	},
}

// ListTemplates returns a copy of the built-in template catalog. It needs
// no store and no session.
func (s *PlanService) ListTemplates() []models.Template {
	return slices.Clone(templateCatalog)
}
