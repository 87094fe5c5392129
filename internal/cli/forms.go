package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/grindcli/grind/internal/domain"
)

func categoryNames() []string {
	names := make([]string, 0, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		names = append(names, string(c))
	}
	return names
}

func difficultyNames() []string {
	names := make([]string, 0, len(domain.AllDifficulties))
	for _, d := range domain.AllDifficulties {
		names = append(names, string(d))
	}
	return names
}

// validateTitle requires a non-blank title.
func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// recordForm builds the interactive entry form for a new or edited
// record. Fields are bound to the given struct; the date field edits a
// separate string so the form can default it to today.
func recordForm(rec *domain.SolvedProblem, date *string) *huh.Form {
	if *date == "" {
		*date = time.Now().Format(domain.DateLayout)
	}

	categoryOptions := make([]huh.Option[domain.Category], 0, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		categoryOptions = append(categoryOptions, huh.NewOption(string(c), c))
	}

	difficultyOptions := make([]huh.Option[domain.Difficulty], 0, len(domain.AllDifficulties))
	for _, d := range domain.AllDifficulties {
		difficultyOptions = append(difficultyOptions, huh.NewOption(string(d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Problem title").
				Placeholder("Two Sum").
				Value(&rec.Title).
				Validate(validateTitle),
			huh.NewSelect[domain.Category]().
				Title("Category").
				Options(categoryOptions...).
				Value(&rec.Category),
			huh.NewSelect[domain.Difficulty]().
				Title("Difficulty").
				Options(difficultyOptions...).
				Value(&rec.Difficulty),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Reference URL").
				Placeholder("https://leetcode.com/problems/...").
				Value(&rec.ReferenceURL),
			huh.NewInput().
				Title("Date solved").
				Description("YYYY-MM-DD, defaults to today").
				Value(date).
				Validate(validateOptionalDate),
			huh.NewConfirm().
				Title("Mark for review?").
				Affirmative("Yes").
				Negative("No").
				Value(&rec.MarkedForReview),
		),
	).WithTheme(grindHuhTheme()).WithShowHelp(false)
}
