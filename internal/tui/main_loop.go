// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type boardMode int

const (
	modeList boardMode = iota
	modeDetail
	modeCreate
)

const (
	titleColumnWidth = 40
	statusClearDelay = 2 * time.Second
)

// mainLoopModel is the task board. It keeps the user's tasks in memory,
// applies every mutation locally first and then re-fetches the whole list.
type mainLoopModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	user    models.PublicUser
	now     func() time.Time

	tasks    []models.Task
	filter   statusFilter
	idx      int
	mode     boardMode
	detailID int64
	loading  bool
	status   string
	errMsg   string

	form taskFormModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64

	logout bool
}

func newMainLoopModel(ctx context.Context, serverAdapter adapter.ServerAdapter, user models.PublicUser, now func() time.Time) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		adapter: serverAdapter,
		user:    user,
		now:     now,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadTasks()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.tasks = msg.tasks
		m.clampCursor()
		if m.mode == modeDetail && m.taskIndex(m.detailID) < 0 {
			m.mode = modeList
		}
		return m, nil
	case taskCreatedMsg:
		return m.afterMutation(msg.err, "Task created")
	case taskUpdatedMsg:
		return m.afterMutation(msg.err, "Task updated")
	case taskDeletedMsg:
		m.pendingDelete = 0
		return m.afterMutation(msg.err, "Task deleted")
	case analyzedMsg:
		m.form.analyzing = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form.errMsg = ""
		m.form.applySuggestion(msg.suggestion)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeCreate {
			return m.updateInput(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showConfirm {
		return m.updateConfirm(keyMsg)
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeCreate:
		return m.updateForm(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

// failed ends the session on a rejected token and shows any other error
// inline.
func (m mainLoopModel) failed(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrUnauthorized) {
		m.logout = true
		return m, tea.Quit
	}
	m.errMsg = humanizeError(err)
	return m, nil
}

// afterMutation reports the outcome and re-fetches, which also rolls back
// a failed optimistic change.
func (m mainLoopModel) afterMutation(err error, done string) (tea.Model, tea.Cmd) {
	m.loading = true
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			m.logout = true
			return m, tea.Quit
		}
		m.errMsg = humanizeError(err)
		return m, m.cmdLoadTasks()
	}

	m.errMsg = ""
	m.status = done
	return m, tea.Batch(m.cmdLoadTasks(), cmdClearStatus())
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.filter):
		m.filter = m.filter.next()
		m.idx = 0
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadTasks()
	case key.Matches(msg, keys.newTask):
		m.form = newTaskFormModel()
		m.mode = modeCreate
		return m, textinput.Blink
	case key.Matches(msg, keys.enter):
		if task, ok := m.current(); ok {
			m.detailID = task.ID
			m.mode = modeDetail
		}
	case key.Matches(msg, keys.toggle):
		if task, ok := m.current(); ok {
			return m.toggle(task)
		}
	case key.Matches(msg, keys.delete):
		if task, ok := m.current(); ok {
			m.askDelete(task)
		}
	case key.Matches(msg, keys.copy):
		if task, ok := m.current(); ok {
			return m, cmdCopyToClipboard(task.Title)
		}
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	i := m.taskIndex(m.detailID)
	if i < 0 {
		m.mode = modeList
		return m, nil
	}
	task := m.tasks[i]

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.toggle):
		return m.toggle(task)
	case key.Matches(msg, keys.delete):
		m.askDelete(task)
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(task.Title)
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focus = focusNext(m.form.inputs, m.form.focus)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focus = focusPrev(m.form.inputs, m.form.focus)
		return m, nil
	case key.Matches(msg, keys.analyze):
		if m.form.analyzing {
			return m, nil
		}
		request, err := m.form.analyzeRequest()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.errMsg = ""
		m.form.analyzing = true
		return m, m.cmdAnalyze(request)
	case key.Matches(msg, keys.enter):
		input, err := m.form.toInput()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.tasks = append([]models.Task{m.provisionalTask(input)}, m.tasks...)
		m.mode = modeList
		m.filter = filterAll
		m.idx = 0
		return m, m.cmdCreate(input)
	}

	return m.updateInput(msg)
}

func (m mainLoopModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete == 0 {
			return m, nil
		}
		if i := m.taskIndex(m.pendingDelete); i >= 0 {
			m.tasks = append(m.tasks[:i:i], m.tasks[i+1:]...)
		}
		m.mode = modeList
		m.clampCursor()
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = 0
	}
	return m, nil
}

// toggle flips task between completed and pending.
func (m mainLoopModel) toggle(task models.Task) (tea.Model, tea.Cmd) {
	next := models.StatusCompleted
	if task.IsCompleted() {
		next = models.StatusPending
	}

	if i := m.taskIndex(task.ID); i >= 0 {
		m.tasks = append([]models.Task(nil), m.tasks...)
		m.tasks[i].Status = next
		m.tasks[i].UpdatedAt = m.now().UTC()
	}
	m.clampCursor()

	return m, m.cmdUpdate(task.ID, models.TaskPatch{Status: &next})
}

func (m *mainLoopModel) askDelete(task models.Task) {
	m.showConfirm = true
	m.confirm.title = task.Title
	m.pendingDelete = task.ID
}

func (m mainLoopModel) provisionalTask(input models.TaskInput) models.Task {
	now := m.now().UTC()
	return models.Task{
		UserID:      m.user.ID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority.OrDefault(),
		Category:    input.Category.OrDefault(),
		Status:      models.StatusPending,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (m mainLoopModel) visible() []models.Task {
	return filterTasks(m.tasks, m.filter)
}

func (m mainLoopModel) current() (models.Task, bool) {
	visible := m.visible()
	if m.idx < 0 || m.idx >= len(visible) {
		return models.Task{}, false
	}
	return visible[m.idx], true
}

func (m mainLoopModel) taskIndex(id int64) int {
	for i, task := range m.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (m *mainLoopModel) clampCursor() {
	if n := len(m.visible()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) View() string {
	var title, body, hotKeys string

	switch m.mode {
	case modeDetail:
		title = "TASK"
		if i := m.taskIndex(m.detailID); i >= 0 {
			body = renderTaskDetail(m.tasks[i])
		}
		hotKeys = "esc: back │ x: toggle done │ d: delete │ c: copy title"
	case modeCreate:
		title = "NEW TASK"
		body = m.form.View()
		hotKeys = "esc: cancel │ tab: next field │ ctrl+a: analyze │ enter: save"
	default:
		title = "TASKS · " + m.userLabel()
		body = m.viewList()
		hotKeys = "n: new │ x: toggle done │ d: delete │ c: copy │ f: filter │ r: refresh │ l: logout │ q: quit"
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}

	return renderPage(title, body, hotKeys)
}

func (m mainLoopModel) userLabel() string {
	if m.user.Name != "" {
		return m.user.Name
	}
	return m.user.Email
}

func (m mainLoopModel) viewList() string {
	stats := computeStats(m.tasks)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total %d │ Pending %d │ In progress %d │ Completed %d │ Done %d%%\n",
		stats.Total, stats.Pending, stats.InProgress, stats.Completed, stats.CompletionRate))
	b.WriteString("Filter: ")
	b.WriteString(m.filter.String())
	if m.loading {
		b.WriteString("  (loading...)")
	}
	b.WriteString("\n\n")

	visible := m.visible()
	switch {
	case len(m.tasks) == 0 && !m.loading:
		b.WriteString("No tasks yet. Press n to add one.")
	case len(visible) == 0 && !m.loading:
		b.WriteString("No tasks match the filter.")
	}

	for i, task := range visible {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		check := "[ ]"
		if task.IsCompleted() {
			check = "[x]"
		}

		title := padRight(fitText(task.Title, titleColumnWidth), titleColumnWidth)
		switch {
		case task.IsCompleted():
			title = doneStyle.Render(title)
		case i == m.idx:
			title = selectedStyle.Render(title)
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s  %-9s %s\n",
			cursor, check, title, renderPriority(task.Priority), task.Category, dateOrDash(task.DueDate)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) cmdLoadTasks() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		tasks, err := serverAdapter.ListTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m mainLoopModel) cmdCreate(input models.TaskInput) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		task, err := serverAdapter.CreateTask(ctx, input)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(taskID int64, patch models.TaskPatch) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		_, err := serverAdapter.UpdateTask(ctx, taskID, patch)
		return taskUpdatedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(taskID int64) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		return taskDeletedMsg{err: serverAdapter.DeleteTask(ctx, taskID)}
	}
}

func (m mainLoopModel) cmdAnalyze(request models.AnalyzeRequest) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		suggestion, err := serverAdapter.AnalyzeTask(ctx, request)
		return analyzedMsg{suggestion: suggestion, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
