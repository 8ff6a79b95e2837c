// Package tui renders the browse view. It drives the browse.Controller from
// a bubbletea event loop: keystrokes feed the controller, the controller's
// command values come back as tea.Cmds, and resolved fetches are handed to
// Resolve so superseded responses never reach the screen.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/xyz-asif/temuin/internal/features/auth"
	"github.com/xyz-asif/temuin/internal/features/browse"
	"github.com/xyz-asif/temuin/internal/features/items"
)

type fetchDoneMsg struct {
	gen uint64
	rs  *items.ResultSet
	err error
}

type debounceMsg struct {
	seq uint64
}

type deleteDoneMsg struct {
	id  string
	err error
}

var statusCycle = []items.Status{
	items.StatusAll,
	items.StatusSearching,
	items.StatusFound,
	items.StatusClaimed,
}

// Model is the bubbletea model for the browse view.
type Model struct {
	ctl      *browse.Controller
	svc      *items.Service
	sessions *auth.Manager
	log      *zap.Logger

	search  textinput.Model
	spin    spinner.Model
	styles  Styles
	width   int
	height  int
	cursor  int
	detail  *items.Item
	overlay string
	typing  bool
}

// New creates the browse model around an existing controller.
func New(ctl *browse.Controller, svc *items.Service, sessions *auth.Manager, log *zap.Logger) Model {
	search := textinput.New()
	search.Placeholder = "Search items..."
	search.CharLimit = 80
	search.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctl:      ctl,
		svc:      svc,
		sessions: sessions,
		log:      log,
		search:   search,
		spin:     spin,
		styles:   DefaultStyles(),
	}
}

// Init commits the initial filter and starts the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.Init()), textinput.Blink)
}

// Update handles one event-loop message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.ctl.State() == browse.StateFetching || m.ctl.State() == browse.StateDebouncing {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case debounceMsg:
		return m, m.fetchCmd(m.ctl.Elapsed(msg.seq))

	case fetchDoneMsg:
		if m.ctl.Resolve(msg.gen, msg.rs, msg.err) {
			m.cursor = 0
		}
		return m, nil

	case deleteDoneMsg:
		m.detail = nil
		if msg.err != nil {
			m.overlay = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		m.overlay = ""
		// The item is gone; re-fetch the current page.
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetPage(m.ctl.Spec().Page)))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		switch msg.String() {
		case "esc", "enter":
			m.typing = false
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			return m.quit()
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			return m, tea.Batch(cmd, m.spin.Tick, m.debounceCmd(m.ctl.Input(m.search.Value())))
		}
		return m, cmd
	}

	if m.detail != nil {
		switch msg.String() {
		case "esc", "q", "enter":
			m.detail = nil
			m.overlay = ""
			return m, nil
		case "x":
			// Guard evaluated fresh against the current session.
			if items.CanMutate(m.sessions.Current(), m.detail) {
				return m, m.deleteCmd(m.detail.ID)
			}
			m.overlay = "You can only delete your own reports."
			return m, nil
		case "ctrl+c":
			return m.quit()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()
	case "/":
		m.typing = true
		m.search.Focus()
		return m, textinput.Blink
	case "tab":
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetStatus(m.nextStatus())))
	case "s":
		sort := items.SortNewest
		if m.ctl.Spec().Sort == items.SortNewest {
			sort = items.SortOldest
		}
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetSort(sort)))
	case "l":
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetKind(items.KindLost)))
	case "f":
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetKind(items.KindFound)))
	case "a":
		return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetKind(items.KindAll)))
	case "right", "n":
		if rs := m.ctl.Results(); rs != nil && rs.HasNext {
			return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetPage(m.ctl.Spec().Page+1)))
		}
		return m, nil
	case "left", "p":
		if m.ctl.Spec().Page > 1 {
			return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.ctl.SetPage(m.ctl.Spec().Page-1)))
		}
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if rs := m.ctl.Results(); rs != nil && m.cursor < len(rs.Items)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if rs := m.ctl.Results(); rs != nil && m.cursor < len(rs.Items) {
			item := rs.Items[m.cursor]
			m.detail = &item
			m.overlay = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.ctl.Close()
	return m, tea.Quit
}

func (m Model) nextStatus() items.Status {
	current := m.ctl.Spec().Status
	for i, s := range statusCycle {
		if s == current {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return items.StatusAll
}

func (m Model) fetchCmd(req *browse.FetchRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		rs, err := m.svc.Query(context.Background(), req.Spec)
		return fetchDoneMsg{gen: req.Gen, rs: rs, err: err}
	}
}

func (m Model) debounceCmd(t *browse.DebounceTimer) tea.Cmd {
	if t == nil {
		return nil
	}
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: t.Seq}
	})
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Delete(context.Background(), id)
		return deleteDoneMsg{id: id, err: err}
	}
}
