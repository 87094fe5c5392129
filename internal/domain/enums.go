package domain

import "fmt"

// Category is a problem topic tag. The set is closed: records only ever
// carry one of the values below.
type Category string

const (
	CategoryArray           Category = "array"
	CategoryString          Category = "string"
	CategoryTwoPointers     Category = "two_pointers"
	CategorySlidingWindow   Category = "sliding_window"
	CategoryLinkedList      Category = "linked_list"
	CategoryStack           Category = "stack"
	CategoryQueue           Category = "queue"
	CategoryTree            Category = "tree"
	CategoryGraph           Category = "graph"
	CategoryHeap            Category = "heap"
	CategoryDP              Category = "dp"
	CategoryGreedy          Category = "greedy"
	CategoryBinarySearch    Category = "binary_search"
	CategorySorting         Category = "sorting"
	CategoryBacktracking    Category = "backtracking"
	CategoryMath            Category = "math"
	CategoryBitManipulation Category = "bit_manipulation"
)

// AllCategories lists every valid category in display order.
var AllCategories = []Category{
	CategoryArray,
	CategoryString,
	CategoryTwoPointers,
	CategorySlidingWindow,
	CategoryLinkedList,
	CategoryStack,
	CategoryQueue,
	CategoryTree,
	CategoryGraph,
	CategoryHeap,
	CategoryDP,
	CategoryGreedy,
	CategoryBinarySearch,
	CategorySorting,
	CategoryBacktracking,
	CategoryMath,
	CategoryBitManipulation,
}

var validCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(AllCategories))
	for _, c := range AllCategories {
		m[c] = true
	}
	return m
}()

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !validCategories[c] {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties lists the difficulty levels from easiest to hardest.
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty validates a raw difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// GoalPeriod selects the calendar window goal adherence is measured over.
type GoalPeriod string

const (
	PeriodDaily  GoalPeriod = "daily"
	PeriodWeekly GoalPeriod = "weekly"
)

// ParseGoalPeriod validates a raw period string.
func ParseGoalPeriod(s string) (GoalPeriod, error) {
	switch p := GoalPeriod(s); p {
	case PeriodDaily, PeriodWeekly:
		return p, nil
	default:
		return "", fmt.Errorf("unknown goal period %q", s)
	}
}
