package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/screens/start"
	"github.com/abhisek/grammiz/internal/screens/welcome"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/topics"
	"github.com/abhisek/grammiz/internal/ui/layout"
)

// Options carries the dependencies the TUI runs on.
type Options struct {
	// Session is the quiz session shared by all screens.
	Session *quiz.Session

	// Registry lists the selectable topics.
	Registry *topics.Registry

	// PrefsRepo persists level and topic choices. Optional.
	PrefsRepo store.PrefsRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	session *quiz.Session
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates a new AppModel opening on the welcome splash.
func newAppModel(opts Options) AppModel {
	startFactory := func() screen.Screen {
		return start.New(opts.Session, opts.Registry, opts.PrefsRepo)
	}
	return AppModel{
		session: opts.Session,
		router:  router.New(welcome.New(startFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Screens own every other key, including esc: the play screen turns
	// it into a quit confirmation rather than an unconditional pop.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, string(m.session.UserLevel), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		if hints := hinted.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
