// envsetup provides a lightweight .env configuration wizard.
// It runs automatically on first bot startup when no .env file exists,
// collecting the Discord credentials the bot needs.
package envsetup

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type step int

const (
	stepWelcome step = iota
	stepDiscord
	stepGuild
	stepConfirm
	stepDone
)

const defaultHealthPort = "8081"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type model struct {
	path         string
	step         step
	discordToken string
	guildID      string
	input        textinput.Model
	err          error
}

func New(path string) model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60
	ti.Prompt = "> "

	return model{
		path:  path,
		step:  stepWelcome,
		input: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil
	value := strings.TrimSpace(m.input.Value())

	switch m.step {
	case stepWelcome:
		m.step = stepDiscord
		m.setSecret(true)

	case stepDiscord:
		if value == "" {
			m.err = errors.New("Discord token is required")
			return m, nil
		}
		m.discordToken = value
		m.step = stepGuild
		m.setSecret(false)

	case stepGuild:
		if strings.ContainsFunc(value, func(r rune) bool { return r < '0' || r > '9' }) {
			m.err = errors.New("Guild ID must be numeric")
			return m, nil
		}
		m.guildID = value
		m.step = stepConfirm

	case stepConfirm:
		switch strings.ToLower(value) {
		case "y", "yes", "":
			if err := m.writeEnvFile(); err != nil {
				m.err = err
				return m, nil
			}
			m.step = stepDone
			return m, tea.Quit
		case "n", "no":
			m.step = stepWelcome
			m.discordToken = ""
			m.guildID = ""
		}
	}

	m.input.Reset()
	return m, nil
}

func (m *model) setSecret(secret bool) {
	if secret {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '*'
		return
	}
	m.input.EchoMode = textinput.EchoNormal
}

func (m model) envContent() string {
	return fmt.Sprintf(`DISCORD_TOKEN=%s
DISCORD_GUILD_ID=%s
HEALTH_PORT=%s
LOG_LEVEL=info
`, m.discordToken, m.guildID, defaultHealthPort)
}

func (m model) writeEnvFile() error {
	if err := os.WriteFile(m.path, []byte(m.envContent()), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", m.path, err)
	}
	return nil
}

func (m model) View() string {
	var s strings.Builder

	switch m.step {
	case stepWelcome:
		s.WriteString(titleStyle.Render("Chuvash Transliteration Bot - Env Setup"))
		s.WriteString("\n\n")
		s.WriteString("This wizard will help you configure the bot.\n")
		s.WriteString("You'll need:\n\n")
		s.WriteString("  - A Discord bot token\n")
		s.WriteString("  - Optionally, a test server (guild) ID\n")
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("Press Enter to continue, Ctrl+C to exit"))

	case stepDiscord:
		s.WriteString(titleStyle.Render("Step 1: Discord Bot Token"))
		s.WriteString("\n\n")
		s.WriteString("To get your Discord bot token:\n\n")
		s.WriteString("  1. Go to " + linkStyle.Render("https://discord.com/developers/applications") + "\n")
		s.WriteString("  2. Create a new application (or select existing)\n")
		s.WriteString("  3. Go to the Bot section\n")
		s.WriteString("  4. Click 'Reset Token' to get your bot token\n")
		s.WriteString("  5. Invite the bot with the applications.commands scope\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Paste your Discord token here:"))
		s.WriteString("\n")
		s.WriteString(m.input.View())

	case stepGuild:
		s.WriteString(titleStyle.Render("Step 2: Discord Guild ID (optional)"))
		s.WriteString("\n\n")
		s.WriteString("Commands registered to a single guild show up immediately.\n")
		s.WriteString("Leave empty to register globally (may take up to an hour).\n\n")
		s.WriteString("  Enable Developer Mode, then right-click your server and 'Copy Server ID'\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Guild ID:"))
		s.WriteString("\n")
		s.WriteString(m.input.View())

	case stepConfirm, stepDone:
		guild := m.guildID
		if guild == "" {
			guild = "(global)"
		}
		s.WriteString(titleStyle.Render("Configuration Complete"))
		s.WriteString("\n\n")
		s.WriteString("Your configuration:\n\n")
		s.WriteString("  Discord:     " + successStyle.Render(maskToken(m.discordToken)) + "\n")
		s.WriteString("  Guild:       " + successStyle.Render(guild) + "\n")
		s.WriteString("  Health port: " + successStyle.Render(defaultHealthPort) + "\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Save this configuration to " + m.path + "? [Y/n]:"))
		s.WriteString("\n")
		s.WriteString(m.input.View())
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	s.WriteString("\n")
	return s.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// Run starts the setup wizard and returns true if the file at path was written.
func Run(path string) (bool, error) {
	p := tea.NewProgram(New(path))
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(model)
	return m.step == stepDone, nil
}

// NeedsSetup reports whether the env file at path is missing.
func NeedsSetup(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}
