package sound

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalayas/takipcim/internal/domain"
)

func newTestPlayer(results ...error) (*Player, *bytes.Buffer, *[]string) {
	var bell bytes.Buffer
	var ran []string
	p := &Player{
		bell: &bell,
		lookup: func(domain.Alert) []soundCommand {
			return []soundCommand{{cmd: "first"}, {cmd: "second"}}
		},
		run: func(c soundCommand) error {
			ran = append(ran, c.cmd)
			if len(results) == 0 {
				return nil
			}
			err := results[0]
			results = results[1:]
			return err
		},
	}
	return p, &bell, &ran
}

func TestPlayer_Notify_StopsAtFirstWorkingCommand(t *testing.T) {
	p, bell, ran := newTestPlayer(errors.New("no paplay"), nil)

	require.NoError(t, p.Notify(domain.AlertFinished))

	assert.Equal(t, []string{"first", "second"}, *ran)
	assert.Empty(t, bell.String())
}

func TestPlayer_Notify_FallsBackToBell(t *testing.T) {
	p, bell, ran := newTestPlayer(errors.New("missing"), errors.New("missing"))

	require.NoError(t, p.Notify(domain.AlertBreakOver))

	assert.Len(t, *ran, 2)
	assert.Equal(t, "\a", bell.String())
}

func TestBell_Notify(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewBell(&buf).Notify(domain.AlertBreakOver))

	assert.Equal(t, "\a", buf.String())
}

func TestCommandsFor_KnownAlerts(t *testing.T) {
	for _, alert := range []domain.Alert{domain.AlertBreakOver, domain.AlertFinished} {
		t.Run(string(alert), func(t *testing.T) {
			// every platform either offers commands or relies on the bell
			for _, c := range commandsFor(alert) {
				assert.NotEmpty(t, c.cmd)
			}
		})
	}
}
