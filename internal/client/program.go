package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-app/internal/domain"
	"todo-app/internal/validation"
)

// NotificationTTL is how long a notification stays on screen
const NotificationTTL = 3 * time.Second

// API is the subset of Client the terminal UI needs
type API interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, title, description string) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id int64, update domain.TodoUpdate) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
	ClearCompleted(ctx context.Context) (*ClearResult, error)
	Health(ctx context.Context) (*Health, error)
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeConfirmClear
)

// Messages delivered back to Update when a command finishes
type (
	todosLoadedMsg struct {
		todos []domain.Todo
		err   error
	}
	todoCreatedMsg struct {
		todo *domain.Todo
		err  error
	}
	todoUpdatedMsg struct {
		todo   *domain.Todo
		edited bool
		err    error
	}
	todoDeletedMsg struct {
		id  int64
		err error
	}
	completedClearedMsg struct {
		result *ClearResult
		err    error
	}
	healthMsg struct {
		online bool
	}
	notificationExpiredMsg struct {
		seq int
	}
)

type pollMsg struct{}

// Model is the bubbletea model of the interactive todo list
type Model struct {
	api          API
	state        *State
	pollInterval time.Duration

	cursor int
	mode   mode
	online bool

	title       textinput.Model
	description textinput.Model
	editID      int64
	submitting  bool

	// confirmID is the todo picked for deletion when d was pressed
	confirmID int64

	keys keyMap
	help help.Model

	notice    *Notification
	noticeSeq int
}

// NewModel creates the interactive model. The first frame shows an empty list
// until the initial fetch returns.
func NewModel(api API, pollInterval time.Duration) Model {
	title := textinput.New()
	title.Prompt = "Title: "
	title.Placeholder = "What needs to be done?"
	title.CharLimit = validation.TitleMaxLength

	description := textinput.New()
	description.Prompt = "Description: "
	description.Placeholder = "optional"

	return Model{
		api:          api,
		state:        NewState(),
		pollInterval: pollInterval,
		online:       true,
		title:        title,
		description:  description,
		keys:         newKeyMap(),
		help:         help.New(),
	}
}

// Run starts the interactive program and blocks until the user quits
func Run(api API, pollInterval time.Duration) error {
	p := tea.NewProgram(NewModel(api, pollInterval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// State exposes the model's todo state
func (m Model) State() *State {
	return m.state
}

// Notice returns the notification currently shown, if any
func (m Model) Notice() *Notification {
	return m.notice
}

// Online reports the result of the last connectivity probe
func (m Model) Online() bool {
	return m.online
}

func fetchTodos(api API) tea.Cmd {
	return func() tea.Msg {
		todos, err := api.ListTodos(context.Background())
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func createTodo(api API, title, description string) tea.Cmd {
	return func() tea.Msg {
		todo, err := api.CreateTodo(context.Background(), title, description)
		return todoCreatedMsg{todo: todo, err: err}
	}
}

func updateTodo(api API, id int64, update domain.TodoUpdate, edited bool) tea.Cmd {
	return func() tea.Msg {
		todo, err := api.UpdateTodo(context.Background(), id, update)
		return todoUpdatedMsg{todo: todo, edited: edited, err: err}
	}
}

func deleteTodo(api API, id int64) tea.Cmd {
	return func() tea.Msg {
		err := api.DeleteTodo(context.Background(), id)
		return todoDeletedMsg{id: id, err: err}
	}
}

func clearCompleted(api API) tea.Cmd {
	return func() tea.Msg {
		result, err := api.ClearCompleted(context.Background())
		return completedClearedMsg{result: result, err: err}
	}
}

func probeHealth(api API) tea.Cmd {
	return func() tea.Msg {
		_, err := api.Health(context.Background())
		return healthMsg{online: err == nil}
	}
}

func schedulePoll(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchTodos(m.api), schedulePoll(m.pollInterval))
}

// notify shows text and schedules its expiry. A newer notification replaces
// an older one, and the older expiry is then ignored.
func (m *Model) notify(text string, kind NotificationKind) tea.Cmd {
	m.noticeSeq++
	m.notice = &Notification{Text: text, Kind: kind}
	seq := m.noticeSeq
	return tea.Tick(NotificationTTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg{seq: seq}
	})
}

func (m *Model) clampCursor() {
	n := len(m.state.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (domain.Todo, bool) {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Todo{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) openForm(md mode, title, description string) tea.Cmd {
	m.mode = md
	m.title.SetValue(title)
	m.title.CursorEnd()
	m.description.SetValue(description)
	m.description.Blur()
	return m.title.Focus()
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	m.submitting = false
	m.editID = 0
	m.title.SetValue("")
	m.title.Blur()
	m.description.SetValue("")
	m.description.Blur()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case todosLoadedMsg:
		if msg.err != nil {
			cmd := m.notify(MessageFor(msg.err), NotifyError)
			return m, cmd
		}
		m.state.Replace(msg.todos)
		m.clampCursor()
		return m, nil

	case todoCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			cmd := m.notify(MessageFor(msg.err), NotifyError)
			return m, cmd
		}
		m.state.Prepend(*msg.todo)
		m.closeForm()
		m.clampCursor()
		cmd := m.notify("Todo created successfully!", NotifySuccess)
		return m, cmd

	case todoUpdatedMsg:
		m.submitting = false
		if msg.err != nil {
			cmd := m.notify(MessageFor(msg.err), NotifyError)
			return m, cmd
		}
		m.state.ReplaceByID(*msg.todo)
		m.clampCursor()
		if msg.edited {
			m.closeForm()
			cmd := m.notify("Todo updated successfully!", NotifySuccess)
			return m, cmd
		}
		return m, nil

	case todoDeletedMsg:
		if msg.err != nil {
			cmd := m.notify(MessageFor(msg.err), NotifyError)
			return m, cmd
		}
		m.state.Remove(msg.id)
		m.clampCursor()
		cmd := m.notify("Todo deleted successfully!", NotifySuccess)
		return m, cmd

	case completedClearedMsg:
		if msg.err != nil {
			cmd := m.notify(MessageFor(msg.err), NotifyError)
			return m, cmd
		}
		cmd := tea.Batch(fetchTodos(m.api), m.notify(msg.result.Message, NotifySuccess))
		return m, cmd

	case pollMsg:
		return m, probeHealth(m.api)

	case healthMsg:
		next := schedulePoll(m.pollInterval)
		switch {
		case msg.online && !m.online:
			m.online = true
			cmd := tea.Batch(next, fetchTodos(m.api), m.notify("Connection restored", NotifySuccess))
			return m, cmd
		case !msg.online && m.online:
			m.online = false
			cmd := tea.Batch(next, m.notify("You are offline", NotifyError))
			return m, cmd
		}
		return m, next

	case notificationExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		case modeConfirmDelete, modeConfirmClear:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if todo, ok := m.selected(); ok {
			completed := !todo.Completed
			return m, updateTodo(m.api, todo.ID, domain.TodoUpdate{Completed: &completed}, false)
		}

	case key.Matches(msg, m.keys.Add):
		cmd := m.openForm(modeAdd, "", "")
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		if todo, ok := m.selected(); ok {
			m.editID = todo.ID
			cmd := m.openForm(modeEdit, todo.Title, todo.Description)
			return m, cmd
		}

	case key.Matches(msg, m.keys.Delete):
		if todo, ok := m.selected(); ok {
			m.confirmID = todo.ID
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, m.keys.Clear):
		if m.state.Stats().Completed == 0 {
			cmd := m.notify("No completed todos to clear", NotifyError)
			return m, cmd
		}
		m.mode = modeConfirmClear

	case key.Matches(msg, m.keys.Filter):
		m.state.SetFilter(m.state.Filter().Next())
		m.clampCursor()

	case key.Matches(msg, m.keys.Refresh):
		return m, fetchTodos(m.api)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	md, id := m.mode, m.confirmID
	m.mode = modeBrowse
	m.confirmID = 0
	if msg.String() != "y" {
		return m, nil
	}

	if md == modeConfirmClear {
		return m, clearCompleted(m.api)
	}
	if id != 0 {
		return m, deleteTodo(m.api, id)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "tab", "shift+tab":
		if m.title.Focused() {
			m.title.Blur()
			cmd := m.description.Focus()
			return m, cmd
		}
		m.description.Blur()
		cmd := m.title.Focus()
		return m, cmd

	case "enter":
		if m.submitting {
			return m, nil
		}
		title := strings.TrimSpace(m.title.Value())
		description := strings.TrimSpace(m.description.Value())
		if title == "" {
			cmd := m.notify("Please enter a title", NotifyError)
			return m, cmd
		}
		m.submitting = true
		if m.mode == modeAdd {
			return m, createTodo(m.api, title, description)
		}
		return m, updateTodo(m.api, m.editID, domain.TodoUpdate{Title: &title, Description: &description}, true)
	}

	return m.updateInputs(msg)
}

// updateInputs forwards keys and cursor blinks to the focused input
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.title.Focused() {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	sections := []string{RenderView(m.state, m.cursor, m.online)}

	switch m.mode {
	case modeAdd, modeEdit:
		heading := "Add todo"
		if m.mode == modeEdit {
			heading = "Edit todo"
		}
		form := titleStyle.Render(heading) + "\n" + m.title.View() + "\n" + m.description.View()
		sections = append(sections, panelStyle.Render(form))
	case modeConfirmDelete:
		prompt := "Delete this todo? (y/n)"
		if todo, ok := m.state.Find(m.confirmID); ok {
			prompt = fmt.Sprintf("Delete %q? (y/n)", todo.Title)
		}
		sections = append(sections, pendingStyle.Render(prompt))
	case modeConfirmClear:
		prompt := fmt.Sprintf("Delete %d completed todo(s)? (y/n)", m.state.Stats().Completed)
		sections = append(sections, pendingStyle.Render(prompt))
	}

	if n := RenderNotification(m.notice); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n")
}
