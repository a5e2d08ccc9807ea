// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VacTuzX-dot/xfrontend/models"
	"github.com/charmbracelet/lipgloss"
)

type column struct {
	title string
	width int
}

var userColumns = []column{
	{"", 3},
	{"ID", 6},
	{"Title", 6},
	{"First name", 12},
	{"Last name", 12},
	{"Username", 14},
	{"Sex", 7},
	{"Birthday", 10},
	{"Password", 9},
	{"", 1},
}

func (m adminModel) View() string {
	switch m.overlay {
	case overlayDetail:
		return m.detailView()
	case overlayConfirm:
		return m.confirmView()
	case overlayError:
		return errorOverlay(m.errText)
	case overlayForm:
		return renderPage(m.form.title(), m.form.view(), "tab: next field │ space: toggle │ ctrl+s: save │ esc: cancel")
	case overlayInfo:
		return renderBuildInfo(m.buildInfo)
	}

	return renderPage("USERS", m.listView(), m.helpView())
}

func (m adminModel) listView() string {
	var b strings.Builder

	b.WriteString(m.headerLine())
	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	if m.batch != nil {
		p := m.batch.progress
		fmt.Fprintf(&b, "%s %s %d/%d\n", m.batch.op, m.progress.ViewAs(p.Ratio()), p.Done, p.Total)
	}
	b.WriteString("\n")

	b.WriteString(headerRowStyle.Render(tableHeader()))
	b.WriteString("\n")

	if len(m.visible) == 0 {
		if len(m.snapshot.Records) == 0 {
			b.WriteString("No users.")
		} else {
			b.WriteString("No users match the filter.")
		}
	} else {
		from, to := rowWindow(m.cursor, len(m.visible), m.height)
		now := m.now()
		for i := from; i < to; i++ {
			b.WriteString(m.renderRow(i, now))
			if i < to-1 {
				b.WriteString("\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return b.String()
}

func (m adminModel) headerLine() string {
	parts := []string{
		fmt.Sprintf("%d of %d users", len(m.visible), len(m.snapshot.Records)),
		fmt.Sprintf("%d selected", m.selection.Len()),
		"last updated " + formatUpdated(m.snapshot.UpdatedAt),
	}
	if m.busy > 0 {
		parts = append(parts, m.spinner.View()+" syncing")
	} else {
		parts = append(parts, "auto-refresh on")
	}
	if m.username != "" {
		parts = append(parts, "signed in as "+m.username)
	}
	return strings.Join(parts, " │ ")
}

func (m adminModel) helpView() string {
	if m.filtering {
		return "type to filter │ enter/esc: done"
	}
	return helpLine(keys.up, keys.down, keys.toggle, keys.toggleAll, keys.enter, keys.filter, keys.refresh) + "\n" +
		helpLine(keys.deleteOne, keys.deleteMany, keys.rehashOne, keys.rehashAll, keys.newUser, keys.edit, keys.copyUser, keys.signOut, keys.info, keys.quit)
}

func (m adminModel) renderRow(i int, now time.Time) string {
	rec := m.visible[i]

	sel := "[ ]"
	if m.selection.Has(rec.ID) {
		sel = "[x]"
	}

	marker := " "
	switch rec.State {
	case models.SyncPending:
		marker = "…"
	case models.SyncFailed:
		marker = "!"
	}

	cells := []string{
		sel,
		rec.ID.String(),
		models.DisplayOr(rec.TitlePrefix, "-"),
		models.DisplayOr(rec.FirstName, "-"),
		models.DisplayOr(rec.LastName, "-"),
		models.DisplayOr(rec.Username, "-"),
		models.DisplayOr(rec.Sex, "-"),
		models.DisplayOr(rec.Birthday, "-"),
		rec.PasswordState().String(),
		marker,
	}

	row := make([]string, len(cells))
	for j, c := range cells {
		row[j] = padCell(c, userColumns[j].width)
	}
	if i != m.cursor {
		row[6] = sexStyle(rec.UserRecord).Render(row[6])
	}
	line := strings.Join(row, " ")

	switch {
	case i == m.cursor:
		return cursorRowStyle.Render(line)
	case m.highlights.Active(rec.ID, now):
		return highlightRowStyle.Render(line)
	case rec.State == models.SyncFailed:
		return failedRowStyle.Render(line)
	case rec.State == models.SyncPending:
		return pendingRowStyle.Render(line)
	}
	return line
}

func (m adminModel) detailView() string {
	rec, ok := m.byID(m.detailID)
	if !ok {
		return renderPage("USER", "This user no longer exists.", "esc: close")
	}

	age := "N/A"
	if a, ok := rec.Age(m.now()); ok {
		age = strconv.Itoa(a)
	}

	rows := [][2]string{
		{"ID", rec.ID.String()},
		{"Name", models.DisplayOr(rec.FullDisplayName(), "N/A")},
		{"Title", models.DisplayOr(rec.TitlePrefix, "N/A")},
		{"First name", models.DisplayOr(rec.FirstName, "N/A")},
		{"Last name", models.DisplayOr(rec.LastName, "N/A")},
		{"Username", models.DisplayOr(rec.Username, "N/A")},
		{"Sex", sexStyle(rec.UserRecord).Render(models.DisplayOr(rec.Sex, "N/A")) + " (" + rec.SexCategory().String() + ")"},
		{"Birthday", models.DisplayOr(rec.Birthday, "N/A")},
		{"Age", age},
		{"Address", models.DisplayOr(rec.Address, "N/A")},
		{"Password", rec.PasswordState().String()},
		{"Sync", rec.State.String()},
	}

	var b strings.Builder
	for i, r := range rows {
		label := padCell(r[0], 11)
		value := strings.ReplaceAll(r[1], "\n", "\n"+strings.Repeat(" ", 11)+" │ ")
		fmt.Fprintf(&b, "%s │ %s", label, value)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("USER DETAILS", overlayBoxStyle.Render(b.String()), "c: copy username │ e: edit │ esc: close")
}

func (m adminModel) confirmView() string {
	prompt := ""
	if m.confirm != nil {
		prompt = m.confirm.prompt
	}
	return renderPage("CONFIRM", overlayBoxStyle.Render(prompt), "y/enter: yes │ n/esc: no")
}

func errorOverlay(text string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render("Error"), "", text)
	return renderPage("ERROR", errorBoxStyle.Render(body), "enter/esc: dismiss")
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder
	b.WriteString("Application: xfrontend\n")
	b.WriteString("Version: " + models.DisplayOr(info.BuildVersion(), "N/A") + "\n")
	b.WriteString("Date: " + models.DisplayOr(info.BuildDate(), "N/A") + "\n")
	b.WriteString("Commit: " + models.DisplayOr(info.BuildCommit(), "N/A"))
	return renderPage("ABOUT", b.String(), "esc: back")
}

func tableHeader() string {
	cells := make([]string, len(userColumns))
	for i, c := range userColumns {
		cells[i] = padCell(c.title, c.width)
	}
	return strings.Join(cells, " ")
}

// rowWindow returns the half-open range of rows to draw so that cursor stays
// visible in a window of height rows.
func rowWindow(cursor, total, height int) (from, to int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	from = cursor - height/2
	from = max(from, 0)
	from = min(from, total-height)
	return from, from + height
}

func sexStyle(u models.UserRecord) lipgloss.Style {
	return sexStyles[u.SexCategory().String()]
}

func formatUpdated(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("15:04:05")
}
