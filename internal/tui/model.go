// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bank-validator/internal/app"
	"github.com/MKhiriev/go-bank-validator/internal/console"
	"github.com/MKhiriev/go-bank-validator/internal/service"
	"github.com/MKhiriev/go-bank-validator/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenForm screen = iota
	screenResult
)

const (
	fieldBankCode = iota
	fieldBranchCode
	fieldAccountNumber
	fieldPersonalKey
	fieldOrderValue
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Bank Code",
	"Branch Code",
	"Account Number",
	"Personal Key",
	"Order",
}

var fieldPlaceholders = [fieldCount]string{
	"3 digits",
	"region + 3 digits",
	"10 digits",
	"6 digits",
	"CHECK or STMT",
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type formModel struct {
	ctx        context.Context
	validation service.ValidationService
	buildInfo  models.AppBuildInfo

	current       screen
	inputs        []textinput.Model
	focus         int
	submitting    bool
	showBuildInfo bool

	request   models.TransactionRequest
	result    models.ValidationResult
	err       error
	status    string
	validated int
}

func newFormModel(ctx context.Context, validation service.ValidationService, buildInfo models.AppBuildInfo) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 20
		inputs[i].Placeholder = fieldPlaceholders[i]
	}
	inputs[fieldPersonalKey].EchoMode = textinput.EchoPassword
	inputs[fieldPersonalKey].EchoCharacter = '*'
	inputs[fieldBankCode].Focus()

	return formModel{
		ctx:        ctx,
		validation: validation,
		buildInfo:  buildInfo,
		inputs:     inputs,
	}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.info) {
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}

		if m.current == screenResult {
			return m.updateResult(msg)
		}
		return m.updateForm(msg)
	case validatedMsg:
		m.submitting = false
		m.request = msg.request
		m.result = msg.result
		m.err = msg.err
		m.current = screenResult
		if msg.err == nil {
			m.validated++
		}
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = "Copy failed: " + msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.current != screenForm {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		return m, tea.Quit
	}
	if m.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		return m.focusNext(), nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		return m.focusPrev(), nil
	case key.Matches(msg, keys.enter):
		if m.focus < fieldCount-1 {
			return m.focusNext(), nil
		}
		m.submitting = true
		m.status = ""
		return m, m.cmdValidate(m.toRequest())
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, tea.Quit
	case key.Matches(msg, keys.enter):
		m.current = screenForm
		m.err = nil
		m.status = ""
		m.inputs[fieldPersonalKey].SetValue("")
		return m.focusOn(fieldPersonalKey), nil
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.reportText())
	}
	return m, nil
}

func (m formModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	title := "BANK TRANSACTION VALIDATOR " + m.buildInfo.BuildVersion()
	if m.current == screenResult {
		return renderPage(title, m.resultView(), "enter: new transaction  ctrl+y: copy report  ctrl+v: about  esc: quit")
	}
	return renderPage(title, m.formView(), "tab: next field  shift+tab: previous field  enter: validate  ctrl+v: about  esc: quit")
}

func (m formModel) formView() string {
	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i] + ":"))
		b.WriteString("[")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\nValidating...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}

func (m formModel) resultView() string {
	var b strings.Builder

	b.WriteString(console.EchoInput(m.request))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("[ERROR]: " + m.err.Error()))
		b.WriteString("\n")
	case m.result.Accepted():
		banner := app.MsgTransactionApproved
		if m.result.Operation != "" {
			banner += " (" + m.result.Operation + ")"
		}
		b.WriteString(approvedStyle.Render(banner))
		b.WriteString("\n")
	default:
		b.WriteString(errorStyle.Render(app.MsgTransactionRejected))
		b.WriteString("\n")
		for _, e := range m.result.Errors {
			b.WriteString(" - ")
			b.WriteString(e)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}

func (m formModel) reportText() string {
	if m.err != nil {
		return console.ErrorReport(m.request, m.err)
	}
	return console.Report(m.request, m.result)
}

func (m formModel) toRequest() models.TransactionRequest {
	value := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	req := models.TransactionRequest{
		BankCode:      value(fieldBankCode),
		BranchCode:    value(fieldBranchCode),
		AccountNumber: value(fieldAccountNumber),
		PersonalKey:   value(fieldPersonalKey),
	}
	if order := value(fieldOrderValue); order != "" {
		req.OrderValue = models.Order(order)
	}
	return req
}

func (m formModel) focusNext() formModel {
	return m.focusOn((m.focus + 1) % len(m.inputs))
}

func (m formModel) focusPrev() formModel {
	return m.focusOn((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func (m formModel) focusOn(i int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) cmdValidate(req models.TransactionRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.validation
	return func() tea.Msg {
		result, err := svc.ValidateTransaction(ctx, req)
		return validatedMsg{request: req, result: result, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
