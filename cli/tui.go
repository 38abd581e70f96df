package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avasiliev/lockbox/vault"
)

type model struct {
	vault    *vault.Vault
	log      *zap.Logger
	password []byte

	state   string // "login", "table", "showEntry", "form", "generate"
	cursor  int
	entries []vault.Entry

	loginInput textinput.Model
	inputs     []textinput.Model
	focusIdx   int
	editID     string // non-empty while editing an existing entry

	genLength  int
	genUpper   bool
	genLower   bool
	genDigits  bool
	genSymbols bool
	genOut     string

	reveal bool
	msg    string
	errMsg string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	msgStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("0"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const formFields = 5 // title, username, password, url, notes

// RunTUI starts the interactive shell. It owns the master password for the
// whole session and wipes it on the way out.
func RunTUI(v *vault.Vault, log *zap.Logger) error {
	login := textinput.New()
	login.Placeholder = "master password"
	login.EchoMode = textinput.EchoPassword
	login.Focus()

	m := model{
		vault:      v,
		log:        log,
		state:      "login",
		loginInput: login,
		genLength:  20,
		genUpper:   true,
		genLower:   true,
		genDigits:  true,
		genSymbols: true,
	}

	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case "login":
		return updateLogin(m, msg)
	case "table":
		return updateTable(m, msg)
	case "showEntry":
		return updateShowEntry(m, msg)
	case "form":
		return updateForm(m, msg)
	case "generate":
		return updateGenerate(m, msg)
	default:
		return m, nil
	}
}

func (m model) View() string {
	switch m.state {
	case "login":
		return viewLogin(m)
	case "table":
		return viewTable(m)
	case "showEntry":
		return viewShowEntry(m)
	case "form":
		return viewForm(m)
	case "generate":
		return viewGenerate(m)
	default:
		return "Unknown state"
	}
}

// --- Login ---

func updateLogin(m model, msg tea.Msg) (model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m.teardown()
		case "enter":
			return m.unlock()
		}
	}
	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	return m, cmd
}

func (m model) unlock() (model, tea.Cmd) {
	password := []byte(m.loginInput.Value())
	m.loginInput.SetValue("")

	err := m.vault.Load(password)
	switch {
	case err == nil:
		m.msg = ""
	case errors.Is(err, vault.ErrNoVault):
		m.msg = "New vault. It is written to disk on first save."
	case errors.Is(err, vault.ErrAuthFailed) || errors.Is(err, vault.ErrMalformedEnvelope):
		vault.Zero(password)
		m.errMsg = "Wrong password or corrupt vault file."
		return m, nil
	default:
		vault.Zero(password)
		m.errMsg = fmt.Sprintf("Unlock failed: %v", err)
		m.log.Error("unlock failed", zap.Error(err))
		return m, nil
	}

	m.password = password
	m.errMsg = ""
	m.entries = m.vault.List()
	m.cursor = 0
	m.state = "table"
	return m, nil
}

func viewLogin(m model) string {
	s := titleStyle.Render("lockbox") + "\n\n"
	s += "Enter master password:\n"
	s += m.loginInput.View() + "\n"
	if m.errMsg != "" {
		s += "\n" + errStyle.Render(m.errMsg) + "\n"
	}
	s += "\n" + helpStyle.Render("enter=unlock, ctrl+c=quit")
	return s
}

// --- Table ---

func updateTable(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m.teardown()
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(m.entries) > 0 {
				m.reveal = false
				m.state = "showEntry"
			}
		case "a":
			m = m.openForm("")
		case "e":
			if len(m.entries) > 0 {
				m = m.openForm(m.entries[m.cursor].ID)
			}
		case "d":
			if len(m.entries) > 0 {
				m.vault.Delete(m.entries[m.cursor].ID)
				m = m.persist("Entry deleted.")
				m.entries = m.vault.List()
				if m.cursor >= len(m.entries) && m.cursor > 0 {
					m.cursor--
				}
			}
		case "c":
			if len(m.entries) > 0 {
				m = m.copySecret(string(m.entries[m.cursor].Secret))
			}
		case "g":
			m.genOut = ""
			m.state = "generate"
		case "s":
			m = m.persist("Vault saved.")
		case "L":
			m = m.lock()
		}
	}
	return m, nil
}

func (m model) openForm(editID string) model {
	placeholders := []string{"Title", "Username", "Password", "URL", "Notes"}
	m.inputs = make([]textinput.Model, formFields)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		m.inputs[i] = ti
	}
	if editID != "" {
		if e := m.vault.Get(editID); e != nil {
			m.inputs[0].SetValue(e.Title)
			m.inputs[1].SetValue(e.Username)
			m.inputs[2].SetValue(string(e.Secret))
			m.inputs[3].SetValue(e.URL)
			m.inputs[4].SetValue(e.Notes)
		}
	}
	m.inputs[0].Focus()
	m.focusIdx = 0
	m.editID = editID
	m.state = "form"
	return m
}

// persist writes the vault through with the session password.
func (m model) persist(okMsg string) model {
	if err := m.vault.Save(m.password); err != nil {
		m.errMsg = fmt.Sprintf("Save failed: %v", err)
		m.log.Error("save failed", zap.Error(err))
		return m
	}
	m.errMsg = ""
	m.msg = okMsg
	return m
}

func (m model) copySecret(secret string) model {
	if err := clipboard.WriteAll(secret); err != nil {
		m.errMsg = fmt.Sprintf("Clipboard: %v", err)
		return m
	}
	m.msg = "Password copied! (clears in 30s)"
	go func() {
		time.Sleep(30 * time.Second)
		clipboard.WriteAll("")
	}()
	return m
}

func (m model) lock() model {
	m.vault.Clear()
	vault.Zero(m.password)
	m.password = nil
	m.entries = nil
	m.cursor = 0
	m.msg = ""
	m.errMsg = ""
	m.loginInput.SetValue("")
	m.loginInput.Focus()
	m.state = "login"
	return m
}

func (m model) teardown() (model, tea.Cmd) {
	m.vault.Clear()
	vault.Zero(m.password)
	m.password = nil
	return m, tea.Quit
}

func viewTable(m model) string {
	s := titleStyle.Render("Vault Entries") + "\n\n"
	if len(m.entries) == 0 {
		s += helpStyle.Render("(empty)") + "\n"
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%-20s  %-20s  %-30s", e.Title, e.Username, e.URL)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		s += line + "\n"
	}
	if m.msg != "" {
		s += "\n" + msgStyle.Render(m.msg)
	}
	if m.errMsg != "" {
		s += "\n" + errStyle.Render(m.errMsg)
	}
	s += "\n" + helpStyle.Render("j/k=move, enter=show, a=add, e=edit, d=delete, c=copy, g=generate, s=save, L=lock, q=quit")
	return s
}

// --- Show entry ---

func updateShowEntry(m model, msg tea.Msg) (model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.reveal = false
			m.state = "table"
		case "v":
			m.reveal = !m.reveal
		case "c":
			m = m.copySecret(string(m.entries[m.cursor].Secret))
		case "ctrl+c":
			return m.teardown()
		}
	}
	return m, nil
}

func viewShowEntry(m model) string {
	e := m.entries[m.cursor]
	secret := "********"
	if m.reveal {
		secret = string(e.Secret)
	}
	s := titleStyle.Render(e.Title) + "\n\n"
	s += fmt.Sprintf("Username: %s\nPassword: %s\nURL:      %s\nNotes:    %s\n",
		e.Username, secret, e.URL, e.Notes)
	if m.msg != "" {
		s += "\n" + msgStyle.Render(m.msg)
	}
	s += "\n" + helpStyle.Render("v=reveal/hide, c=copy, esc=back")
	return s
}

// --- Add / edit form ---

func updateForm(m model, msg tea.Msg) (model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.state = "table"
			return m, nil
		case "ctrl+c":
			return m.teardown()
		case "tab", "down":
			m.focusField((m.focusIdx + 1) % formFields)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focusIdx + formFields - 1) % formFields)
			return m, nil
		case "enter":
			if m.focusIdx == formFields-1 {
				return m.submitForm(), nil
			}
			m.focusField(m.focusIdx + 1)
			return m, nil
		case "ctrl+s":
			return m.submitForm(), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *model) focusField(i int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = i
	m.inputs[i].Focus()
}

func (m model) submitForm() model {
	if m.inputs[0].Value() == "" {
		m.errMsg = "Title is required."
		return m
	}

	if m.editID != "" {
		e := m.vault.Get(m.editID)
		if e != nil {
			vault.Zero(e.Secret)
			e.Title = m.inputs[0].Value()
			e.Username = m.inputs[1].Value()
			e.Secret = []byte(m.inputs[2].Value())
			e.URL = m.inputs[3].Value()
			e.Notes = m.inputs[4].Value()
		}
	} else {
		m.vault.Add(vault.Entry{
			ID:       uuid.NewString(),
			Title:    m.inputs[0].Value(),
			Username: m.inputs[1].Value(),
			Secret:   []byte(m.inputs[2].Value()),
			URL:      m.inputs[3].Value(),
			Notes:    m.inputs[4].Value(),
		})
	}

	m = m.persist("Entry saved.")
	m.entries = m.vault.List()
	m.state = "table"
	return m
}

func viewForm(m model) string {
	heading := "Add Entry"
	if m.editID != "" {
		heading = "Edit Entry"
	}
	s := titleStyle.Render(heading) + "\n\n"
	for _, ti := range m.inputs {
		s += fmt.Sprintf("%-8s %s\n", ti.Placeholder+":", ti.View())
	}
	if m.errMsg != "" {
		s += "\n" + errStyle.Render(m.errMsg)
	}
	s += "\n" + helpStyle.Render("tab=next field, enter on Notes or ctrl+s=save, esc=cancel")
	return s
}

// --- Password generator ---

func updateGenerate(m model, msg tea.Msg) (model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.state = "table"
			return m, nil
		case "ctrl+c":
			return m.teardown()
		case "up", "k":
			m.genLength++
		case "down", "j":
			if m.genLength > 1 {
				m.genLength--
			}
		case "u":
			m.genUpper = !m.genUpper
		case "l":
			m.genLower = !m.genLower
		case "n":
			m.genDigits = !m.genDigits
		case "s":
			m.genSymbols = !m.genSymbols
		case "r", "enter":
			out, err := vault.GeneratePassword(m.genLength, m.genUpper, m.genLower, m.genDigits, m.genSymbols)
			if err != nil {
				m.errMsg = fmt.Sprintf("Generate: %v", err)
				return m, nil
			}
			m.errMsg = ""
			m.genOut = out
		case "c":
			if m.genOut != "" {
				m = m.copySecret(m.genOut)
			}
		}
	}
	return m, nil
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func viewGenerate(m model) string {
	s := titleStyle.Render("Password Generator") + "\n\n"
	s += fmt.Sprintf("Length: %d\n\n", m.genLength)
	s += checkbox("uppercase (u)", m.genUpper) + "\n"
	s += checkbox("lowercase (l)", m.genLower) + "\n"
	s += checkbox("numbers   (n)", m.genDigits) + "\n"
	s += checkbox("symbols   (s)", m.genSymbols) + "\n"
	if m.genOut != "" {
		s += "\n" + msgStyle.Render(m.genOut) + "\n"
	}
	if m.errMsg != "" {
		s += "\n" + errStyle.Render(m.errMsg) + "\n"
	}
	if m.msg != "" {
		s += "\n" + msgStyle.Render(m.msg) + "\n"
	}
	s += "\n" + helpStyle.Render("up/down=length, r=generate, c=copy, esc=back")
	return s
}
