package profiles

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/router"
	"github.com/abhisek/debugme/internal/screen"
	"github.com/abhisek/debugme/internal/store"
	"github.com/abhisek/debugme/internal/ui/components"
	"github.com/abhisek/debugme/internal/ui/layout"
	"github.com/abhisek/debugme/internal/ui/theme"
)

type editorStep int

const (
	stepName editorStep = iota
	stepRatings
	stepDone
)

// editorScreen walks through creating a profile: a name, then a 1-5
// rating per competency, then save and select.
type editorScreen struct {
	cat  *catalog.Catalog
	prof *profile.Store
	db   *store.Store

	step         editorStep
	competencies []catalog.Competency
	ratings      map[string]int
	current      int
	name         string
	input        components.TextInput
	errMsg       string
	saveErr      error
	saved        bool
}

var _ screen.Screen = (*editorScreen)(nil)
var _ screen.KeyHintProvider = (*editorScreen)(nil)
var _ screen.InputCapturer = (*editorScreen)(nil)

func newEditorScreen(cat *catalog.Catalog, prof *profile.Store, db *store.Store) *editorScreen {
	comps := cat.Competencies()
	return &editorScreen{
		cat:          cat,
		prof:         prof,
		db:           db,
		step:         stepName,
		competencies: comps,
		ratings:      profile.Draft(comps),
		input:        components.NewTextInput("Profile name (e.g. Current me)", false, 32),
	}
}

func (e *editorScreen) Init() tea.Cmd {
	return e.input.Init()
}

// CapturesInput suspends the global Esc binding while typing.
func (e *editorScreen) CapturesInput() bool {
	return e.step != stepDone
}

func (e *editorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesSavedMsg:
		e.saveErr = msg.err
		e.saved = true
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *editorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		return e, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch e.step {
	case stepName:
		if msg.String() == "enter" {
			name := strings.TrimSpace(e.input.Value())
			if name == "" {
				e.errMsg = "Name cannot be empty"
				return e, nil
			}
			e.name = name
			e.errMsg = ""
			e.step = stepRatings
			e.input = components.NewTextInput("1-5", true, 1)
			return e, e.input.Init()
		}

	case stepRatings:
		if msg.String() == "enter" {
			level, err := e.input.NumericValue()
			if err != nil || level < 1 || level > 5 {
				e.errMsg = "Enter a rating from 1 to 5"
				return e, nil
			}
			e.errMsg = ""
			e.ratings[e.competencies[e.current].Name] = level
			e.current++
			if e.current < len(e.competencies) {
				e.input = components.NewTextInput("1-5", true, 1)
				return e, e.input.Init()
			}
			e.step = stepDone
			return e, e.save()
		}

	case stepDone:
		if e.saved && (msg.String() == "enter" || msg.String() == "q") {
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// save adds the profile, selects it, and persists the whole list.
func (e *editorScreen) save() tea.Cmd {
	p := profile.Profile{Name: e.name, Competencies: e.ratings}
	idx, err := e.prof.Add(p)
	if err == nil {
		err = e.prof.Select(idx)
	}
	if err != nil {
		return func() tea.Msg { return profilesSavedMsg{err: err} }
	}

	all := e.prof.All()
	selected := e.prof.SelectedIndex()
	return func() tea.Msg {
		return profilesSavedMsg{err: e.db.SaveProfiles(context.Background(), all, selected)}
	}
}

func (e *editorScreen) View(width, height int) string {
	switch e.step {
	case stepName:
		return e.renderStep("New profile", "What should this profile be called?", width)

	case stepRatings:
		comp := e.competencies[e.current]
		prompt := fmt.Sprintf("(%d/%d) Rate your %s from 1 to 5",
			e.current+1, len(e.competencies), comp.Name)
		body := e.renderStep(comp.Name, prompt, width)
		desc := theme.Hint.Width(width - 8).Render(comp.Description)
		return body + "\n\n" + desc

	case stepDone:
		if !e.saved {
			return theme.Hint.Render("Saving...")
		}
		if e.saveErr != nil {
			return theme.Incorrect.Render("Save failed: " + e.saveErr.Error())
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Correct.Render("Profile saved and selected."), "",
			theme.Hint.Render("Press Enter to return"))
	}
	return ""
}

func (e *editorScreen) renderStep(title, prompt string, width int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render(title))
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(prompt))
	sections = append(sections, e.input.View())
	if e.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(e.errMsg))
	}
	return strings.Join(sections, "\n\n")
}

func (e *editorScreen) Title() string {
	return "New Profile"
}

func (e *editorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Cancel"},
	}
}
