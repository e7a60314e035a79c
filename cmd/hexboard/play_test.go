package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexboard/board"
)

const scenario = `seed: 42
players:
  - name: alice
    hand: {brick: 1, lumber: 1}
  - name: bob
actions:
  - {do: settle, player: alice, at: 0, setup: true}
  - {do: settle, player: bob, at: 1, setup: true}
  - {do: road, player: alice, at: 0}
  - {do: road, player: alice, at: 1}
  - {do: upgrade, player: bob, at: 0}
  - {do: settle, player: alice, at: 9}
  - {do: roll, dice: 8}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScript(t *testing.T) {
	s, err := loadScript(writeFile(t, "game.yaml", scenario))
	require.NoError(t, err)

	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(42), *s.Seed)
	require.Len(t, s.Players, 2)
	assert.Equal(t, map[string]int{"brick": 1, "lumber": 1}, s.Players[0].Hand)
	require.Len(t, s.Actions, 7)
	assert.Equal(t, action{Do: "settle", Player: "alice", At: 0, Setup: true}, s.Actions[0])
	assert.Equal(t, action{Do: "roll", Dice: 8}, s.Actions[6])

	_, err = loadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunScript(t *testing.T) {
	s, err := loadScript(writeFile(t, "game.yaml", scenario))
	require.NoError(t, err)

	var out bytes.Buffer
	b := board.New(board.WithSeed(*s.Seed))
	require.NoError(t, runScript(b, s, rand.New(rand.NewSource(1)), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "1 settle alice@0 (setup) ok", lines[0])
	assert.Equal(t, "2 settle bob@1 (setup) rejected: board: adjacent vertex is occupied: vertex 1 is next to vertex 0", lines[1])
	assert.Equal(t, "3 road alice@0 ok", lines[2])
	assert.Equal(t, "4 road alice@1 rejected: cannot afford a road (hand: empty)", lines[3])
	assert.Equal(t, "5 upgrade bob@0 rejected: board: vertex not owned by player: vertex 0, player bob", lines[4])
	assert.Equal(t, "6 settle alice@9 rejected: board: not connected to the player's roads or buildings: no road of alice reaches vertex 9", lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "7 roll 8: alice +"), lines[6])
	assert.Contains(t, lines[6], ", bob +0")

	assert.Contains(t, out.String(), "  alice: settlements [0] cities [] roads [0]\n")
	assert.Contains(t, out.String(), "  bob: settlements [] cities [] roads []\n")
}

func TestRunScript_RollWithoutDice(t *testing.T) {
	s := script{
		Players: []scriptPlayer{{Name: "alice"}},
		Actions: []action{{Do: actRoll}},
	}
	var out bytes.Buffer
	require.NoError(t, runScript(board.New(board.WithSeed(1)), s, rand.New(rand.NewSource(1)), &out))
	assert.Regexp(t, `^1 roll ([2-9]|1[0-2]): alice \+\d+\n`, out.String())
}

func TestRunScript_Malformed(t *testing.T) {
	cases := []struct {
		name string
		s    script
		msg  string
	}{
		{"unnamed player", script{Players: []scriptPlayer{{Name: " "}}}, "player without a name"},
		{"duplicate player", script{Players: []scriptPlayer{{Name: "a"}, {Name: "a"}}}, "listed twice"},
		{"bad resource", script{Players: []scriptPlayer{{Name: "a", Hand: map[string]int{"gold": 1}}}}, "unknown resource"},
		{"desert in hand", script{Players: []scriptPlayer{{Name: "a", Hand: map[string]int{"desert": 1}}}}, "bad hand entry"},
		{"unknown action", script{Actions: []action{{Do: "trade"}}}, `unknown action "trade"`},
		{"unknown player", script{Actions: []action{{Do: actRoad, Player: "carol"}}}, `unknown player "carol"`},
		{"bad dice", script{Actions: []action{{Do: actRoll, Dice: 13}}}, "dice 13 outside 2..12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runScript(board.New(board.WithSeed(1)), tc.s, rand.New(rand.NewSource(1)), &out)
			require.ErrorIs(t, err, errScript)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Empty(t, out.String(), "nothing applied")
		})
	}
}

func TestRunScript_SetupIsFree(t *testing.T) {
	s := script{
		Players: []scriptPlayer{{Name: "alice"}},
		Actions: []action{
			{Do: actSettle, Player: "alice", At: 0, Setup: true},
			{Do: actRoad, Player: "alice", At: 0, Setup: true},
			{Do: actUpgrade, Player: "alice", At: 0, Setup: true},
		},
	}
	var out bytes.Buffer
	require.NoError(t, runScript(board.New(board.WithSeed(1)), s, rand.New(rand.NewSource(1)), &out))
	assert.Contains(t, out.String(), "3 upgrade alice@0 (setup) ok\n")
	assert.Contains(t, out.String(), "  alice: settlements [] cities [0] roads [0]\n")
}

func TestPlayCmd(t *testing.T) {
	path := writeFile(t, "game.yaml", scenario)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"play", path, "--log-level", "error"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1 settle alice@0 (setup) ok\n")
	assert.Contains(t, out.String(), "hands:\n")
}
