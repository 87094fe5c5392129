package domain

// GoalCategory is a static grouping of problem categories that goals are
// set against. One goal category may aggregate several problem categories
// (e.g. "DP & Greedy" covers both dp and greedy records).
type GoalCategory struct {
	ID            string
	Label         string
	DefaultTarget int
	Covers        []Category
}

// GoalCategories is the reference catalog. It is not persisted: loaded goal
// settings are reconciled against it on every ledger open.
var GoalCategories = []GoalCategory{
	{
		ID:            "arrays_strings",
		Label:         "Arrays & Strings",
		DefaultTarget: 3,
		Covers:        []Category{CategoryArray, CategoryString, CategoryTwoPointers, CategorySlidingWindow},
	},
	{
		ID:            "linked_structures",
		Label:         "Linked Lists, Stacks & Queues",
		DefaultTarget: 2,
		Covers:        []Category{CategoryLinkedList, CategoryStack, CategoryQueue},
	},
	{
		ID:            "trees_graphs",
		Label:         "Trees, Graphs & Heaps",
		DefaultTarget: 2,
		Covers:        []Category{CategoryTree, CategoryGraph, CategoryHeap},
	},
	{
		ID:            "dp_greedy",
		Label:         "DP & Greedy",
		DefaultTarget: 2,
		Covers:        []Category{CategoryDP, CategoryGreedy},
	},
	{
		ID:            "search_sort",
		Label:         "Searching, Sorting & Backtracking",
		DefaultTarget: 2,
		Covers:        []Category{CategoryBinarySearch, CategorySorting, CategoryBacktracking},
	},
	{
		ID:            "math_bits",
		Label:         "Math & Bit Manipulation",
		DefaultTarget: 1,
		Covers:        []Category{CategoryMath, CategoryBitManipulation},
	},
}

// GoalCategoryByID looks up a catalog entry.
func GoalCategoryByID(id string) (GoalCategory, bool) {
	for _, gc := range GoalCategories {
		if gc.ID == id {
			return gc, true
		}
	}
	return GoalCategory{}, false
}

// Goal is a per-category target count for the active period.
type Goal struct {
	CategoryID string `json:"categoryId"`
	Target     int    `json:"target"`
}

// GoalSettings holds the user's goal configuration.
type GoalSettings struct {
	Period                GoalPeriod      `json:"period"`
	Goals                 map[string]Goal `json:"goals"`
	DefaultCodingLanguage string          `json:"defaultCodingLanguage,omitempty"`
}

// DefaultGoalSettings derives fresh settings from the catalog defaults.
func DefaultGoalSettings() GoalSettings {
	goals := make(map[string]Goal, len(GoalCategories))
	for _, gc := range GoalCategories {
		goals[gc.ID] = Goal{CategoryID: gc.ID, Target: gc.DefaultTarget}
	}
	return GoalSettings{
		Period: PeriodDaily,
		Goals:  goals,
	}
}

// Clone returns a deep copy of the settings.
func (s GoalSettings) Clone() GoalSettings {
	out := s
	out.Goals = make(map[string]Goal, len(s.Goals))
	for k, v := range s.Goals {
		out.Goals[k] = v
	}
	return out
}
