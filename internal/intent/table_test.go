package intent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Match(t *testing.T) {
	table := Default()

	tests := []struct {
		query  string
		intent string
		found  bool
	}{
		{query: "who are you", intent: "self_introduction", found: true},
		{query: "Hello", intent: "greeting", found: true},
		{query: "  hi arlo  ", intent: "greeting", found: true},
		{query: "hello there friend", found: false},
		{query: "What time is it?", intent: "time", found: true},
		{query: "what is the date", intent: "date", found: true},
		{query: "battery level please", intent: "battery", found: true},
		{query: "show me cpu usage", intent: "system_info", found: true},
		{query: "open youtube", intent: "open_youtube", found: true},
		{query: "open www.google.com", intent: "open_google", found: true},
		{query: "open google mail", intent: "open_google", found: true},
		{query: "launch gmail", intent: "open_gmail", found: true},
		{query: "open github.com", intent: "open_website", found: true},
		{query: "take a screenshot", intent: "screenshot", found: true},
		{query: "open notepad", intent: "notepad", found: true},
		{query: "open calc", intent: "calculator", found: true},
		{query: "tell me a joke", intent: "joke", found: true},
		{query: "what is the capital of france", found: false},
		{query: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			m, ok := table.Match(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.intent, m.Intent.Name)
				assert.NotEmpty(t, m.Pattern)
			}
		})
	}
}

func TestTable_FirstIntentWins(t *testing.T) {
	// "tell me about yourself" is declared before the capabilities intent,
	// and "open youtube.com" matches open_youtube before open_website.
	table := Default()

	m, ok := table.Match("tell me about yourself and what can you do")
	require.True(t, ok)
	assert.Equal(t, "self_introduction", m.Intent.Name)

	m, ok = table.Match("open youtube.com")
	require.True(t, ok)
	assert.Equal(t, "open_youtube", m.Intent.Name)
	assert.Equal(t, `\bopen youtube\b`, m.Pattern)
}

func TestTable_FirstPatternWins(t *testing.T) {
	table, err := NewTable(
		MustNew("a", []string{`foo`, `foo bar`}, WithResponses("x")),
	)
	require.NoError(t, err)

	m, ok := table.Match("foo bar")
	require.True(t, ok)
	assert.Equal(t, "foo", m.Pattern)
}

func TestTable_MatchIsStable(t *testing.T) {
	table := Default()
	first, ok := table.Match("open calculator and tell me a joke")
	require.True(t, ok)

	for i := 0; i < 50; i++ {
		m, ok := table.Match("open calculator and tell me a joke")
		require.True(t, ok)
		assert.Equal(t, first.Intent.Name, m.Intent.Name)
		assert.Equal(t, first.Pattern, m.Pattern)
	}
}

func TestTable_IntentsIsACopy(t *testing.T) {
	table := Default()
	intents := table.Intents()
	intents[0].Name = "changed"
	intents[0].Responses[0] = "changed"

	assert.Equal(t, "self_introduction", table.Intents()[0].Name)
	assert.Equal(t, IntroductionResponses[0], table.Intents()[0].Responses[0])
}

func TestNewTable_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		intents []Intent
	}{
		{
			name: "duplicate names",
			intents: []Intent{
				MustNew("a", []string{"x"}, WithResponses("1")),
				MustNew("a", []string{"y"}, WithResponses("2")),
			},
		},
		{
			name:    "both responses and handler",
			intents: []Intent{{Name: "a", Patterns: Default().Intents()[0].Patterns, Responses: []string{"1"}, Handler: "time"}},
		},
		{
			name:    "neither responses nor handler",
			intents: []Intent{{Name: "a", Patterns: Default().Intents()[0].Patterns}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.intents...)
			assert.ErrorIs(t, err, ErrInvalidIntent)
		})
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New("broken", []string{`(unclosed`}, WithResponses("x"))
	assert.ErrorIs(t, err, ErrInvalidIntent)
}

func TestTable_Handlers(t *testing.T) {
	names := Default().Handlers()
	assert.Equal(t, []string{
		HandlerTime, HandlerDate, HandlerBattery, HandlerSystemInfo,
		HandlerOpenYouTube, HandlerOpenGoogle, HandlerOpenGmail, HandlerOpenWebsite,
		HandlerScreenshot, HandlerNotepad, HandlerCalculator,
	}, names)
}

func TestParse_PreservesOrder(t *testing.T) {
	table, err := Parse(`
[[intent]]
name = "second"
patterns = ['\bhello\b']
responses = ["from second"]

[[intent]]
name = "first"
patterns = ['\bhello world\b']
handler = "time"
`)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	m, ok := table.Match("hello world")
	require.True(t, ok)
	assert.Equal(t, "second", m.Intent.Name)
	assert.Equal(t, []string{"from second"}, m.Intent.Responses)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(`[[intent]]
name = "x"
patterns = ['a']
`)
	assert.ErrorIs(t, err, ErrInvalidIntent)

	_, err = Parse(`not toml = = =`)
	assert.Error(t, err)

	_, err = Parse(``)
	assert.ErrorIs(t, err, ErrInvalidIntent)
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file uses default table", func(t *testing.T) {
		table, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default().Len(), table.Len())
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "intents.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[[intent]]
name = "ping"
patterns = ['^ping$']
responses = ["pong"]
`), 0o600))

		table, err := LoadFile(path)
		require.NoError(t, err)
		m, ok := table.Match("PING")
		require.True(t, ok)
		assert.Equal(t, "ping", m.Intent.Name)
	})
}
