package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/numcalc/internal/config"
	"github.com/agbru/numcalc/internal/orchestration"
)

func testModel() Model {
	return NewModel(context.Background(), config.AppConfig{N: config.DefaultN})
}

func TestModel_QuitKey(t *testing.T) {
	t.Parallel()

	m := testModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c did not produce a command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("ctrl+c produced %T, want tea.QuitMsg", msg)
	}
}

func TestModel_EnterStartsComputation(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.input.SetValue("25")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)
	if !model.running {
		t.Error("enter did not mark the model as running")
	}
	if cmd == nil {
		t.Fatal("enter did not produce a compute command")
	}

	msg, ok := cmd().(resultsMsg)
	if !ok {
		t.Fatalf("compute command produced %T, want resultsMsg", cmd())
	}
	if msg.err != nil {
		t.Fatalf("comparison failed: %v", msg.err)
	}
	if len(msg.results) == 0 {
		t.Fatal("comparison produced no results")
	}
}

func TestModel_EnterRejectsNonInteger(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.input.SetValue("abc")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)
	if model.running {
		t.Error("non-integer input started a computation")
	}
	if cmd != nil {
		t.Error("non-integer input produced a command")
	}
	if model.runErr == nil {
		t.Error("non-integer input did not set an error")
	}
}

func TestModel_ResultsRendered(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.lastN = 20

	results, err := orchestration.CompareMethods(context.Background(), 20)
	if err != nil {
		t.Fatal(err)
	}
	updated, _ := m.Update(resultsMsg{n: 20, results: results})
	model := updated.(Model)

	view := model.View()
	if !strings.Contains(view, "Comparison for F(20)") {
		t.Errorf("view missing results header:\n%s", view)
	}
	for _, name := range []string{"iterative", "memoized", "generator"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing method %q:\n%s", name, view)
		}
	}
}

func TestModel_ClearResults(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.results = []orchestration.MethodResult{{}}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	model := updated.(Model)
	if model.results != nil {
		t.Error("ctrl+l did not clear the results")
	}
}
