package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/player"
)

// Script action kinds.
const (
	actSettle  = "settle"
	actRoad    = "road"
	actUpgrade = "upgrade"
	actRoll    = "roll"
)

var errScript = errors.New("script")

// script is a replayable game fragment.
type script struct {
	Seed    *int64         `mapstructure:"seed"`
	Players []scriptPlayer `mapstructure:"players"`
	Actions []action       `mapstructure:"actions"`
}

type scriptPlayer struct {
	Name string         `mapstructure:"name"`
	Hand map[string]int `mapstructure:"hand"`
}

// action is one step. At is a vertex for settle and upgrade and an edge for
// road. Dice applies to roll; zero rolls two dice.
type action struct {
	Do     string `mapstructure:"do"`
	Player string `mapstructure:"player"`
	At     int    `mapstructure:"at"`
	Setup  bool   `mapstructure:"setup"`
	Dice   int    `mapstructure:"dice"`
}

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play SCRIPT",
		Short: "Replay a placement script on a fresh board",
		Long: `play loads a YAML, JSON or TOML script and applies its actions in order.

  seed: 42
  players:
    - name: alice
      hand: {brick: 1, lumber: 1}
    - name: bob
  actions:
    - {do: settle, player: alice, at: 0, setup: true}
    - {do: road, player: alice, at: 0}
    - {do: roll, dice: 8}

Actions outside the setup phase are charged to the player's hand.
Rejected actions are reported and the script goes on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScript(args[0])
			if err != nil {
				return err
			}
			opts := []board.Option{board.WithLogger(a.log)}
			if s.Seed != nil {
				opts = append(opts, board.WithSeed(*s.Seed))
			}
			b := board.New(opts...)
			a.log.Info("script loaded",
				zap.String("path", args[0]),
				zap.Int("players", len(s.Players)),
				zap.Int("actions", len(s.Actions)),
			)
			return runScript(b, s, rand.New(rand.NewSource(b.Seed())), cmd.OutOrStdout())
		},
	}
}

// loadScript reads a script file with its own viper instance.
func loadScript(path string) (script, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return script{}, fmt.Errorf("read script: %w", err)
	}
	var s script
	if err := v.Unmarshal(&s); err != nil {
		return script{}, fmt.Errorf("decode script: %w", err)
	}
	return s, nil
}

// runScript applies every action of s to b and writes one line per action,
// then the final hands and holdings. dice rolls for actions without a value.
// Malformed scripts fail before anything is applied.
func runScript(b *board.Board, s script, dice *rand.Rand, out io.Writer) error {
	hands, order, err := buildHands(s.Players)
	if err != nil {
		return err
	}
	for i, act := range s.Actions {
		if err := checkAction(act, hands); err != nil {
			return fmt.Errorf("action %d: %w", i+1, err)
		}
	}

	for i, act := range s.Actions {
		var line string
		switch act.Do {
		case actRoll:
			line = roll(b, act.Dice, dice, hands, order)
		default:
			line = build(b, act, hands[act.Player])
		}
		fmt.Fprintf(out, "%d %s\n", i+1, line)
	}

	fmt.Fprintln(out, "hands:")
	for _, name := range order {
		fmt.Fprintf(out, "  %s: %s\n", name, hands[name])
	}
	fmt.Fprintln(out, "holdings:")
	for _, name := range order {
		h := b.Holdings(board.PlayerID(name))
		fmt.Fprintf(out, "  %s: settlements %v cities %v roads %v\n", name, h.Settlements, h.Cities, h.Roads)
	}

	return nil
}

func buildHands(players []scriptPlayer) (map[string]*player.Hand, []string, error) {
	hands := make(map[string]*player.Hand, len(players))
	order := make([]string, 0, len(players))
	for _, p := range players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, nil, fmt.Errorf("%w: player without a name", errScript)
		}
		if _, dup := hands[name]; dup {
			return nil, nil, fmt.Errorf("%w: player %q listed twice", errScript, name)
		}
		start := board.Yield{}
		for res, n := range p.Hand {
			r, err := board.ParseResource(res)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: player %q: %w", errScript, name, err)
			}
			if r == board.Desert || n < 0 {
				return nil, nil, fmt.Errorf("%w: player %q: bad hand entry %s=%d", errScript, name, res, n)
			}
			start[r] += n
		}
		hands[name] = player.NewHand(board.PlayerID(name), player.WithStarting(start))
		order = append(order, name)
	}
	return hands, order, nil
}

func checkAction(act action, hands map[string]*player.Hand) error {
	switch act.Do {
	case actRoll:
		if act.Dice != 0 && (act.Dice < board.MinRoll || act.Dice > board.MaxRoll) {
			return fmt.Errorf("%w: dice %d outside %d..%d", errScript, act.Dice, board.MinRoll, board.MaxRoll)
		}
		return nil
	case actSettle, actRoad, actUpgrade:
		if _, ok := hands[act.Player]; !ok {
			return fmt.Errorf("%w: unknown player %q", errScript, act.Player)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown action %q", errScript, act.Do)
	}
}

// build applies a settle, road or upgrade action. Legality is checked
// before cost, so an illegal action reports the board's reason.
func build(b *board.Board, act action, hand *player.Hand) string {
	who := board.PlayerID(act.Player)
	label := fmt.Sprintf("%s %s@%d", act.Do, act.Player, act.At)
	if act.Setup {
		label += " (setup)"
	}

	var (
		item  player.Build
		legal error
		apply func() bool
	)
	switch act.Do {
	case actSettle:
		item, legal = player.Settlement, b.CanPlaceSettlement(act.At, who, act.Setup)
		apply = func() bool { return b.PlaceSettlement(act.At, who, act.Setup) }
	case actRoad:
		item, legal = player.Road, b.CanPlaceRoad(act.At, who)
		apply = func() bool { return b.PlaceRoad(act.At, who) }
	default:
		item, legal = player.City, b.CanUpgrade(act.At, who)
		apply = func() bool { return b.UpgradeSettlement(act.At, who) }
	}

	if legal != nil {
		return fmt.Sprintf("%s rejected: %v", label, legal)
	}
	if !act.Setup && !hand.CanAfford(item) {
		return fmt.Sprintf("%s rejected: cannot afford a %s (hand: %s)", label, item, hand)
	}
	if !apply() {
		return label + " rejected"
	}
	if !act.Setup {
		if err := hand.Pay(item); err != nil {
			return fmt.Sprintf("%s ok, unpaid: %v", label, err)
		}
	}

	return label + " ok"
}

// roll credits every player's production for one roll.
func roll(b *board.Board, value int, dice *rand.Rand, hands map[string]*player.Hand, order []string) string {
	if value == 0 {
		value = 2 + dice.Intn(6) + dice.Intn(6)
	}
	parts := make([]string, 0, len(order))
	for _, name := range order {
		y := b.GiveResources(board.PlayerID(name), value, hands[name])
		parts = append(parts, fmt.Sprintf("%s +%d", name, y.Total()))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("roll %d", value)
	}
	return fmt.Sprintf("roll %d: %s", value, strings.Join(parts, ", "))
}
