package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/intelligence"
	"github.com/grindcli/grind/internal/ledger"
	"github.com/grindcli/grind/internal/testutil"
)

// testApp wires an App over an in-memory slot for CLI integration tests.
func testApp(t *testing.T) (*App, *testutil.MemorySlot) {
	t.Helper()
	slot := &testutil.MemorySlot{}
	led := ledger.Open(slot, log.New(io.Discard, "", 0))
	return &App{Ledger: led}, slot
}

// execute runs the root command with args and captures its output.
func execute(app *App, args ...string) (string, error) {
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestAddThenList(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(app, "add",
		"--title", "Two Sum",
		"--category", "array",
		"--difficulty", "easy",
		"--date", "2024-03-11",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged")
	assert.Contains(t, out, "Two Sum")

	out, err = execute(app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "2024-03-11")
	assert.Contains(t, out, "1 problem(s)")
}

func TestAddRejectsUnknownCategory(t *testing.T) {
	app, _ := testApp(t)

	_, err := execute(app, "add",
		"--title", "X",
		"--category", "arrays",
		"--difficulty", "easy",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestAddWithoutTitleNonInteractive(t *testing.T) {
	app, _ := testApp(t)

	_, err := execute(app, "add", "--category", "array", "--difficulty", "easy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestListFilters(t *testing.T) {
	app, _ := testApp(t)

	mustAdd(t, app, "Two Sum", "array", "easy")
	mustAdd(t, app, "Course Schedule", "graph", "medium")

	out, err := execute(app, "list", "--category", "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "Course Schedule")
	assert.NotContains(t, out, "Two Sum")

	out, err = execute(app, "list", "--difficulty", "easy")
	require.NoError(t, err)
	assert.Contains(t, out, "Two Sum")
	assert.NotContains(t, out, "Course Schedule")
}

func TestShowByIDPrefix(t *testing.T) {
	app, _ := testApp(t)
	rec := mustAdd(t, app, "Two Sum", "array", "easy")

	out, err := execute(app, "show", rec.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "TWO SUM")
	assert.Contains(t, out, rec.ID)
}

func TestEditChangesDifficulty(t *testing.T) {
	app, _ := testApp(t)
	rec := mustAdd(t, app, "Two Sum", "array", "easy")

	out, err := execute(app, "edit", rec.ID, "--difficulty", "medium")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated")

	got := app.Ledger.Snapshot().Records[0]
	assert.Equal(t, "medium", string(got.Difficulty))
	assert.Equal(t, "Two Sum", got.Title)
}

func TestRemoveUnknownID(t *testing.T) {
	app, _ := testApp(t)

	_, err := execute(app, "remove", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRemoveThenListEmpty(t *testing.T) {
	app, _ := testApp(t)
	rec := mustAdd(t, app, "Two Sum", "array", "easy")

	out, err := execute(app, "remove", rec.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	out, err = execute(app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No problems logged yet")
}

func TestReviewToggle(t *testing.T) {
	app, _ := testApp(t)
	rec := mustAdd(t, app, "Two Sum", "array", "easy")

	out, err := execute(app, "review", rec.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "marked for review")

	out, err = execute(app, "review", rec.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")
}

func TestGoalsShowAndSet(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(app, "goals")
	require.NoError(t, err)
	assert.Contains(t, out, "GOAL SETTINGS")
	assert.Contains(t, out, "daily")
	assert.Contains(t, out, "Arrays & Strings")

	out, err = execute(app, "goals", "set", "--goal", "dp_greedy", "--target", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "set to 5")

	assert.Equal(t, 5, app.Ledger.Snapshot().GoalSettings.Goals["dp_greedy"].Target)
}

func TestGoalsSetUnknownGoal(t *testing.T) {
	app, _ := testApp(t)

	_, err := execute(app, "goals", "set", "--goal", "everything", "--target", "5")
	require.Error(t, err)
}

func TestGoalsPeriodAndStatusTitle(t *testing.T) {
	app, _ := testApp(t)

	out, err := execute(app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "TODAY'S GOALS")

	_, err = execute(app, "goals", "period", "weekly")
	require.NoError(t, err)

	out, err = execute(app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "THIS WEEK'S GOALS")
}

func TestGoalsLanguage(t *testing.T) {
	app, _ := testApp(t)

	_, err := execute(app, "goals", "language", "go")
	require.NoError(t, err)
	assert.Equal(t, "go", app.Ledger.Snapshot().GoalSettings.DefaultCodingLanguage)
}

func TestStatsOutput(t *testing.T) {
	app, _ := testApp(t)
	mustAdd(t, app, "Two Sum", "array", "easy")

	out, err := execute(app, "stats", "--days", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "PRACTICE STATS")
	assert.Contains(t, out, "Total:")
}

func TestRecommendWithoutService(t *testing.T) {
	app, _ := testApp(t)

	_, err := execute(app, "recommend")
	require.Error(t, err)
}

type fixedRecommender struct {
	resp *intelligence.RecommendResponse
}

func (f fixedRecommender) Recommend(ctx context.Context, req intelligence.RecommendRequest) (*intelligence.RecommendResponse, error) {
	return f.resp, nil
}

func TestRecommendPrintsSuggestions(t *testing.T) {
	app, _ := testApp(t)
	app.Recommend = fixedRecommender{resp: &intelligence.RecommendResponse{
		Recommendations: []intelligence.Recommendation{
			{Category: "graph", ProblemName: "Number of Islands", Difficulty: "medium", Reason: "You have not touched graphs yet."},
		},
		Source: "deterministic",
	}}

	out, err := execute(app, "recommend")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of Islands")
	assert.Contains(t, out, "offline suggestions")
}

func TestRecommendRejectsUnknownFocus(t *testing.T) {
	app, _ := testApp(t)
	app.Recommend = fixedRecommender{resp: &intelligence.RecommendResponse{}}

	_, err := execute(app, "recommend", "--focus", "everything")
	require.Error(t, err)
}

func TestRemindWithoutNotifier(t *testing.T) {
	app, _ := testApp(t)

	_, err := execute(app, "remind")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GRIND_REMIND_URL")
}

// mustAdd logs a record through the public command surface and returns it.
func mustAdd(t *testing.T, app *App, title, category, difficulty string) domain.SolvedProblem {
	t.Helper()
	_, err := execute(app, "add",
		"--title", title,
		"--category", category,
		"--difficulty", difficulty,
		"--date", "2024-03-11",
	)
	require.NoError(t, err)

	records := app.Ledger.Snapshot().Records
	return records[len(records)-1]
}
