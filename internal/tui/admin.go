// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	opDelete     = "delete"
	opDeleteMany = "bulk delete"
	opRehash     = "hash"
	opRehashAll  = "hash all"
	opCreate     = "create"
	opEdit       = "edit"

	highlightTickInterval = 250 * time.Millisecond
	defaultTableRows      = 15
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayDetail
	overlayConfirm
	overlayError
	overlayForm
	overlayInfo
)

// confirmState is a pending yes/no question and the command run on yes.
type confirmState struct {
	prompt string
	onYes  func(m adminModel) (adminModel, tea.Cmd)
}

// batchState tracks a running DeleteMany or RehashAll.
type batchState struct {
	op       string
	progress models.BatchProgress
}

// adminModel is the users screen.
type adminModel struct {
	ctx       context.Context
	services  *service.ClientServices
	send      func(tea.Msg)
	now       func() time.Time
	buildInfo models.AppBuildInfo
	username  string

	snapshot   models.Snapshot
	visible    []models.RecordView
	cursor     int
	selection  *service.Selection
	highlights *service.Highlights
	ticking    bool

	filter    textinput.Model
	filtering bool

	spinner  spinner.Model
	progress progress.Model
	busy     int
	batch    *batchState

	overlay  overlayKind
	detailID models.RecordID
	confirm  *confirmState
	form     recordForm
	errText  string
	status   string

	height int
	logout bool
	notice string
}

func newAdminModel(ctx context.Context, services *service.ClientServices, username string, highlight time.Duration, buildInfo models.AppBuildInfo, send func(tea.Msg)) adminModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by name, username, address, sex"
	filter.CharLimit = 128
	filter.Width = 50

	if send == nil {
		send = func(tea.Msg) {}
	}

	return adminModel{
		ctx:        ctx,
		services:   services,
		send:       send,
		now:        time.Now,
		buildInfo:  buildInfo,
		username:   username,
		selection:  service.NewSelection(),
		highlights: service.NewHighlights(highlight),
		filter:     filter,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		height:     defaultTableRows,
		busy:       1,
	}
}

// Init starts the first manual fetch; busy already counts it.
func (m adminModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdFetch(m.ctx, m.services.Fetcher))
}

func (m adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-14, 3)
		m.progress.Width = min(max(msg.Width-20, 10), 60)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		m.busy = max(m.busy-1, 0)
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = "Refreshed."
		return m.reload()

	case pollAppliedMsg:
		return m.reload()

	case mutationDoneMsg:
		m.busy = max(m.busy-1, 0)
		if m.overlay == overlayForm && (msg.op == opCreate || msg.op == opEdit) {
			m.form.saving = false
			if msg.err != nil {
				m.form.errMsg = service.UserMessage(msg.err)
				return m.reload()
			}
			m.overlay = overlayNone
		}
		if msg.err != nil {
			m.showError(msg.err)
			return m.reload()
		}
		m.status = statusFor(msg.op)
		return m.reload()

	case batchProgressMsg:
		if m.batch != nil && m.batch.op == msg.op {
			m.batch.progress = msg.progress
		}
		return m.reload()

	case batchDoneMsg:
		m.busy = max(m.busy-1, 0)
		m.batch = nil
		m.status = batchSummary(msg.op, msg.result)
		if msg.op == opDeleteMany {
			m.selection.Clear()
		}
		return m.reload()

	case copiedMsg:
		if msg.err != nil {
			m.showError(fmt.Errorf("copy to clipboard: %w", msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %q to the clipboard.", msg.username)
		return m, nil

	case highlightTickMsg:
		m.highlights.Expire(time.Time(msg))
		if m.highlights.Len() == 0 {
			m.ticking = false
			return m, nil
		}
		return m, cmdHighlightTick()

	case sessionExpiredMsg:
		m.notice = "Your session has expired. Please sign in again."
		return m, cmdSignOut(m.ctx, m.services.Sessions)

	case signOutDoneMsg:
		m.logout = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.overlay == overlayForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m adminModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayError, overlayInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || msg.String() == "q" {
			m.overlay = overlayNone
			m.errText = ""
		}
		return m, nil
	case overlayDetail:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter), msg.String() == "q":
			m.overlay = overlayNone
		case key.Matches(msg, keys.copyUser):
			return m, m.copyCurrentUsername()
		case key.Matches(msg, keys.edit):
			return m.openEditForm()
		}
		return m, nil
	case overlayConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			c := m.confirm
			m.overlay = overlayNone
			m.confirm = nil
			if c != nil && c.onYes != nil {
				return c.onYes(m)
			}
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
			m.confirm = nil
		}
		return m, nil
	case overlayForm:
		return m.handleFormKey(msg)
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.top):
		m.cursor = 0
	case key.Matches(msg, keys.bottom):
		m.cursor = max(len(m.visible)-1, 0)
	case key.Matches(msg, keys.filter):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, keys.esc):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.project()
		}
	case key.Matches(msg, keys.toggle):
		if rec, ok := m.current(); ok {
			m.selection.Toggle(rec.ID)
		}
	case key.Matches(msg, keys.toggleAll):
		m.selection.ToggleAllVisible(recordIDs(m.visible))
	case key.Matches(msg, keys.enter):
		if rec, ok := m.current(); ok {
			m.detailID = rec.ID
			m.overlay = overlayDetail
		}
	case key.Matches(msg, keys.refresh):
		m.busy++
		m.status = ""
		return m, cmdFetch(m.ctx, m.services.Fetcher)
	case key.Matches(msg, keys.deleteOne):
		return m.askDeleteOne()
	case key.Matches(msg, keys.deleteMany):
		return m.askDeleteMany()
	case key.Matches(msg, keys.rehashOne):
		return m.rehashCurrent()
	case key.Matches(msg, keys.rehashAll):
		return m.askRehashAll()
	case key.Matches(msg, keys.newUser):
		m.form = newCreateForm()
		m.overlay = overlayForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		return m.openEditForm()
	case key.Matches(msg, keys.copyUser):
		return m, m.copyCurrentUsername()
	case key.Matches(msg, keys.signOut):
		m.confirm = &confirmState{
			prompt: "Sign out?",
			onYes: func(m adminModel) (adminModel, tea.Cmd) {
				return m, cmdSignOut(m.ctx, m.services.Sessions)
			},
		}
		m.overlay = overlayConfirm
	case key.Matches(msg, keys.info):
		m.overlay = overlayInfo
	}

	return m, nil
}

func (m adminModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.project()
	return m, cmd
}

func (m adminModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, keys.submit), key.Matches(msg, keys.enter) && m.form.lastFocused():
		m.form.saving = true
		m.form.errMsg = ""
		m.busy++
		if m.form.mode == formEdit {
			return m, cmdEdit(m.ctx, m.services.Dispatcher, m.form.id, m.form.editRequest())
		}
		return m, cmdCreate(m.ctx, m.services.Dispatcher, m.form.signUpRequest())
	case key.Matches(msg, keys.enter):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m adminModel) openEditForm() (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if m.overlay == overlayDetail {
		rec, ok = m.byID(m.detailID)
	}
	if !ok {
		return m, nil
	}
	m.form = newEditForm(rec.UserRecord)
	m.overlay = overlayForm
	return m, textinput.Blink
}

func (m adminModel) askDeleteOne() (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if !ok {
		return m, nil
	}

	id := rec.ID
	m.confirm = &confirmState{
		prompt: fmt.Sprintf("Delete user %q (id %s)?", rec.Username, id),
		onYes: func(m adminModel) (adminModel, tea.Cmd) {
			m.busy++
			return m, cmdDeleteOne(m.ctx, m.services.Dispatcher, id)
		},
	}
	m.overlay = overlayConfirm
	return m, nil
}

func (m adminModel) askDeleteMany() (tea.Model, tea.Cmd) {
	ids := m.selection.Ordered(recordIDs(m.snapshot.Records))
	if len(ids) == 0 || m.batch != nil {
		return m, nil
	}

	m.confirm = &confirmState{
		prompt: fmt.Sprintf("Delete %d selected users?", len(ids)),
		onYes: func(m adminModel) (adminModel, tea.Cmd) {
			m.busy++
			m.batch = &batchState{op: opDeleteMany, progress: models.BatchProgress{Total: len(ids)}}
			return m, cmdDeleteMany(m.ctx, m.services.Dispatcher, ids, m.send)
		},
	}
	m.overlay = overlayConfirm
	return m, nil
}

func (m adminModel) askRehashAll() (tea.Model, tea.Cmd) {
	records := m.snapshot.Users()
	plain := 0
	for _, r := range records {
		if !r.IsHashed() {
			plain++
		}
	}
	if plain == 0 {
		m.status = "Every password is already hashed."
		return m, nil
	}
	if m.batch != nil {
		return m, nil
	}

	m.confirm = &confirmState{
		prompt: fmt.Sprintf("Hash %d plaintext passwords?", plain),
		onYes: func(m adminModel) (adminModel, tea.Cmd) {
			m.busy++
			m.batch = &batchState{op: opRehashAll, progress: models.BatchProgress{Total: plain}}
			return m, cmdRehashAll(m.ctx, m.services.Dispatcher, records, m.send)
		},
	}
	m.overlay = overlayConfirm
	return m, nil
}

func (m adminModel) rehashCurrent() (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if !ok {
		return m, nil
	}
	if rec.IsHashed() {
		m.status = "Password is already hashed."
		return m, nil
	}
	m.busy++
	return m, cmdRehashOne(m.ctx, m.services.Dispatcher, rec.UserRecord)
}

func (m adminModel) copyCurrentUsername() tea.Cmd {
	rec, ok := m.current()
	if m.overlay == overlayDetail {
		rec, ok = m.byID(m.detailID)
	}
	if !ok {
		return nil
	}
	return cmdCopyUsername(rec.Username)
}

// reload takes the latest snapshot from the store, highlights rows whose
// password became hashed since the previous one and re-applies the filter.
func (m adminModel) reload() (tea.Model, tea.Cmd) {
	next := m.services.Snapshot.Snapshot()
	newlyHashed := service.DetectNewlyHashed(m.snapshot.Users(), next.Users())
	m.snapshot = next
	m.selection.Retain(recordIDs(next.Records))
	m.project()

	if len(newlyHashed) == 0 {
		return m, nil
	}
	m.highlights.Add(newlyHashed, m.now())
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, cmdHighlightTick()
}

func (m *adminModel) project() {
	m.visible = service.Filter(m.snapshot.Records, m.filter.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *adminModel) moveCursor(delta int) {
	if len(m.visible) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
}

func (m *adminModel) showError(err error) {
	m.errText = service.UserMessage(err)
	m.overlay = overlayError
}

func (m adminModel) current() (models.RecordView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return models.RecordView{}, false
	}
	return m.visible[m.cursor], true
}

func (m adminModel) byID(id models.RecordID) (models.RecordView, bool) {
	for _, r := range m.snapshot.Records {
		if r.ID == id {
			return r, true
		}
	}
	return models.RecordView{}, false
}

func recordIDs(records []models.RecordView) []models.RecordID {
	out := make([]models.RecordID, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func statusFor(op string) string {
	switch op {
	case opDelete:
		return "User deleted."
	case opRehash:
		return "Password hashed."
	case opCreate:
		return "User created."
	case opEdit:
		return "User saved."
	default:
		return ""
	}
}

func batchSummary(op string, r models.BatchResult) string {
	switch r.Outcome() {
	case models.BatchEmpty:
		return fmt.Sprintf("%s: nothing to do.", op)
	case models.BatchSucceeded:
		return fmt.Sprintf("%s: %d succeeded.", op, r.Succeeded)
	case models.BatchFailed:
		return fmt.Sprintf("%s: all %d failed.", op, r.Failed)
	default:
		return fmt.Sprintf("%s: %d succeeded, %d failed.", op, r.Succeeded, r.Failed)
	}
}
