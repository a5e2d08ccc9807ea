// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/VacTuzX-dot/xfrontend/internal/crypto"
	"github.com/VacTuzX-dot/xfrontend/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formMode int

const (
	formCreate formMode = iota
	formEdit
)

const (
	fieldTitle           = "title"
	fieldFirstName       = "first_name"
	fieldLastName        = "last_name"
	fieldUsername        = "username"
	fieldPassword        = "password"
	fieldConfirmPassword = "confirm_password"
	fieldNewPassword     = "new_password"
	fieldAddress         = "address"
	fieldSex             = "sex"
	fieldBirthday        = "birthday"
	fieldTerms           = "terms"
)

type formField struct {
	name     string
	label    string
	input    textinput.Model
	toggle   bool
	checked  bool
	strength bool
}

// recordForm backs both the sign-up form and the edit form.
type recordForm struct {
	mode   formMode
	id     models.RecordID
	fields []formField
	focus  int
	saving bool
	errMsg string
}

func newTextField(name, label, placeholder string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	return formField{name: name, label: label, input: in}
}

func newSecretField(name, label string) formField {
	f := newTextField(name, label, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

func newCreateForm() recordForm {
	password := newSecretField(fieldPassword, "Password")
	password.strength = true

	f := recordForm{
		mode: formCreate,
		fields: []formField{
			newTextField(fieldTitle, "Title", "Mr."),
			newTextField(fieldFirstName, "First name", ""),
			newTextField(fieldLastName, "Last name", ""),
			newTextField(fieldUsername, "Username", ""),
			password,
			newSecretField(fieldConfirmPassword, "Confirm"),
			newTextField(fieldAddress, "Address", ""),
			newTextField(fieldSex, "Sex", "Male / Female / Other"),
			newTextField(fieldBirthday, "Birthday", "YYYY-MM-DD"),
			{name: fieldTerms, label: "Accept terms", toggle: true},
		},
	}
	f.setFocus(0)
	return f
}

func newEditForm(rec models.UserRecord) recordForm {
	password := newSecretField(fieldNewPassword, "New password")
	password.input.Placeholder = "leave empty to keep"
	password.strength = true

	f := recordForm{
		mode: formEdit,
		id:   rec.ID,
		fields: []formField{
			newTextField(fieldTitle, "Title", ""),
			newTextField(fieldFirstName, "First name", ""),
			newTextField(fieldLastName, "Last name", ""),
			newTextField(fieldUsername, "Username", ""),
			newTextField(fieldAddress, "Address", ""),
			newTextField(fieldSex, "Sex", ""),
			newTextField(fieldBirthday, "Birthday", "YYYY-MM-DD"),
			password,
		},
	}

	initial := map[string]string{
		fieldTitle:     rec.TitlePrefix,
		fieldFirstName: rec.FirstName,
		fieldLastName:  rec.LastName,
		fieldUsername:  rec.Username,
		fieldAddress:   rec.Address,
		fieldSex:       rec.Sex,
		fieldBirthday:  rec.Birthday,
	}
	for i := range f.fields {
		if v, ok := initial[f.fields[i].name]; ok {
			f.fields[i].input.SetValue(v)
		}
	}

	f.setFocus(0)
	return f
}

func (f *recordForm) setFocus(i int) {
	n := len(f.fields)
	i = (i + n) % n
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	if !f.fields[i].toggle {
		f.fields[i].input.Focus()
	}
	f.focus = i
}

func (f recordForm) lastFocused() bool {
	return f.focus == len(f.fields)-1
}

// update handles navigation and typing. Submit and cancel are decided by
// the caller.
func (f recordForm) update(msg tea.Msg) (recordForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return f, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return f, nil
		case " ":
			if f.fields[f.focus].toggle {
				f.fields[f.focus].checked = !f.fields[f.focus].checked
				return f, nil
			}
		}
	}

	if f.fields[f.focus].toggle {
		return f, nil
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f recordForm) value(name string) string {
	for _, field := range f.fields {
		if field.name == name {
			return field.input.Value()
		}
	}
	return ""
}

func (f recordForm) checked(name string) bool {
	for _, field := range f.fields {
		if field.name == name {
			return field.checked
		}
	}
	return false
}

func (f recordForm) signUpRequest() models.SignUpRequest {
	return models.SignUpRequest{
		UserRecord: models.UserRecord{
			TitlePrefix: strings.TrimSpace(f.value(fieldTitle)),
			FirstName:   strings.TrimSpace(f.value(fieldFirstName)),
			LastName:    strings.TrimSpace(f.value(fieldLastName)),
			Username:    strings.TrimSpace(f.value(fieldUsername)),
			Password:    f.value(fieldPassword),
			Address:     strings.TrimSpace(f.value(fieldAddress)),
			Sex:         strings.TrimSpace(f.value(fieldSex)),
			Birthday:    strings.TrimSpace(f.value(fieldBirthday)),
		},
		ConfirmPassword: f.value(fieldConfirmPassword),
		AcceptedTerms:   f.checked(fieldTerms),
	}
}

func (f recordForm) editRequest() models.EditRequest {
	return models.EditRequest{
		TitlePrefix: strings.TrimSpace(f.value(fieldTitle)),
		FirstName:   strings.TrimSpace(f.value(fieldFirstName)),
		LastName:    strings.TrimSpace(f.value(fieldLastName)),
		Username:    strings.TrimSpace(f.value(fieldUsername)),
		Address:     strings.TrimSpace(f.value(fieldAddress)),
		Sex:         strings.TrimSpace(f.value(fieldSex)),
		Birthday:    strings.TrimSpace(f.value(fieldBirthday)),
		NewPassword: f.value(fieldNewPassword),
	}
}

func (f recordForm) view() string {
	var b strings.Builder

	for i, field := range f.fields {
		label := padCell(field.label, 13)
		if field.toggle {
			box := "[ ]"
			if field.checked {
				box = "[x]"
			}
			if i == f.focus {
				box = cursorRowStyle.Render(box)
			}
			fmt.Fprintf(&b, "%s │ %s\n", label, box)
			continue
		}

		fmt.Fprintf(&b, "%s │ %s\n", label, field.input.View())
		if field.strength && field.input.Value() != "" {
			fmt.Fprintf(&b, "%s │ %s\n", padCell("", 13), strengthMeter(field.input.Value()))
		}
	}

	if f.saving {
		b.WriteString("\n[Saving...]")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f recordForm) title() string {
	if f.mode == formEdit {
		return "EDIT USER " + f.id.String()
	}
	return "NEW USER"
}

func strengthMeter(password string) string {
	score := crypto.PasswordStrength(password)
	return strings.Repeat("■", score) + strings.Repeat("□", crypto.MaxStrength-score) + " " + crypto.StrengthLabel(score)
}
