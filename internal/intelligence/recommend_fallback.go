package intelligence

import (
	"fmt"
	"sort"

	"github.com/grindcli/grind/internal/domain"
)

// DeterministicRecommend builds suggestions without the LLM: it points the
// user at the goal categories with the fewest solves, at the difficulty
// one notch above what they have been solving there. Used whenever the
// model is unavailable or its output fails grounding.
func DeterministicRecommend(req RecommendRequest) *RecommendResponse {
	counts := make(map[domain.Category]int)
	hardest := make(map[domain.Category]domain.Difficulty)
	for _, s := range req.Solved {
		counts[s.Category]++
		if difficultyRank(s.Difficulty) > difficultyRank(hardest[s.Category]) {
			hardest[s.Category] = s.Difficulty
		}
	}

	candidates := req.FocusCategories
	if len(candidates) == 0 {
		candidates = leastPracticed(counts, 3)
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, cat := range candidates {
		diff := nextDifficulty(hardest[cat])
		recs = append(recs, Recommendation{
			Category:    cat,
			ProblemName: fmt.Sprintf("Any %s %s problem from your sheet", diff, categoryLabel(cat)),
			Difficulty:  diff,
			URL:         req.SourceSheetURL,
			Reason:      fmt.Sprintf("Only %d solved in %s so far", counts[cat], categoryLabel(cat)),
		})
	}

	return &RecommendResponse{Recommendations: recs, Source: "deterministic"}
}

// leastPracticed picks the n categories with the fewest solves, breaking
// ties by catalog order so output is stable.
func leastPracticed(counts map[domain.Category]int, n int) []domain.Category {
	order := make(map[domain.Category]int, len(domain.AllCategories))
	for i, c := range domain.AllCategories {
		order[c] = i
	}

	cats := append([]domain.Category(nil), domain.AllCategories...)
	sort.SliceStable(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] < counts[cats[j]]
		}
		return order[cats[i]] < order[cats[j]]
	})

	if len(cats) > n {
		cats = cats[:n]
	}
	return cats
}

func difficultyRank(d domain.Difficulty) int {
	switch d {
	case domain.DifficultyEasy:
		return 1
	case domain.DifficultyMedium:
		return 2
	case domain.DifficultyHard:
		return 3
	default:
		return 0
	}
}

// nextDifficulty steps up one notch from the hardest solved, capping at hard.
// No history in a category starts at easy.
func nextDifficulty(hardest domain.Difficulty) domain.Difficulty {
	switch hardest {
	case domain.DifficultyEasy:
		return domain.DifficultyMedium
	case domain.DifficultyMedium, domain.DifficultyHard:
		return domain.DifficultyHard
	default:
		return domain.DifficultyEasy
	}
}

func categoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryDP:
		return "dynamic programming"
	case domain.CategoryBitManipulation:
		return "bit manipulation"
	case domain.CategoryLinkedList:
		return "linked list"
	case domain.CategoryTwoPointers:
		return "two pointers"
	case domain.CategorySlidingWindow:
		return "sliding window"
	case domain.CategoryBinarySearch:
		return "binary search"
	default:
		return string(c)
	}
}
