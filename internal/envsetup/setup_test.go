package envsetup

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeAndEnter(t *testing.T, m model, text string) (model, tea.Cmd) {
	t.Helper()
	if text != "" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
		m = next.(model)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model), cmd
}

func TestWizardWritesEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	m := New(path)

	m, _ = typeAndEnter(t, m, "")
	require.Equal(t, stepDiscord, m.step)

	m, _ = typeAndEnter(t, m, "abcd-token-wxyz")
	require.Equal(t, stepGuild, m.step)
	assert.Equal(t, "abcd-token-wxyz", m.discordToken)

	m, _ = typeAndEnter(t, m, "123456")
	require.Equal(t, stepConfirm, m.step)

	m, cmd := typeAndEnter(t, m, "")
	require.NoError(t, m.err)
	assert.Equal(t, stepDone, m.step)
	require.NotNil(t, cmd)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DISCORD_TOKEN=abcd-token-wxyz\nDISCORD_GUILD_ID=123456\nHEALTH_PORT=8081\nLOG_LEVEL=info\n", string(b))
	assert.False(t, NeedsSetup(path))
}

func TestWizardValidation(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), ".env"))
	m, _ = typeAndEnter(t, m, "")

	m, _ = typeAndEnter(t, m, "")
	assert.Equal(t, stepDiscord, m.step)
	assert.EqualError(t, m.err, "Discord token is required")

	m, _ = typeAndEnter(t, m, "token")
	m, _ = typeAndEnter(t, m, "not-a-number")
	assert.Equal(t, stepGuild, m.step)
	assert.EqualError(t, m.err, "Guild ID must be numeric")
}

func TestWizardDeclineRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	m := New(path)
	m, _ = typeAndEnter(t, m, "")
	m, _ = typeAndEnter(t, m, "token")
	m, _ = typeAndEnter(t, m, "")
	m, _ = typeAndEnter(t, m, "n")

	assert.Equal(t, stepWelcome, m.step)
	assert.Empty(t, m.discordToken)
	assert.True(t, NeedsSetup(path))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", maskToken("abcd"))
	assert.Equal(t, "abcd****wxyz", maskToken("abcd1234wxyz"))
}
