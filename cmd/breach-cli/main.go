package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmcavoy/breach/internal/config"
	"github.com/jmcavoy/breach/internal/game"
	"github.com/jmcavoy/breach/internal/log"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	difficulty := flag.String("difficulty", "", "AI difficulty: easy, hard, or brutal (prompted if empty)")
	configFile := flag.String("config", "", "path to balance YAML (defaults used if empty)")
	flag.Parse()

	balance := config.FromEnv()
	if *configFile != "" {
		var err error
		balance, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	eng := game.NewEngine(game.Config{
		Balance: balance,
		Seed:    *seed,
		Logger:  log.NewTextLogger(os.Stdout),
		Pacer:   game.NewNoopPacer(),
	})

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	tier := game.ParseDifficulty(*difficulty)
	for tier == game.DifficultyNone {
		fmt.Print("Difficulty (easy/hard/brutal): ")
		if !in.Scan() {
			return
		}
		tier = game.ParseDifficulty(strings.TrimSpace(in.Text()))
	}
	eng.SetDifficulty(ctx, tier)

	render(eng)
	printHelp()

	for {
		if eng.State.Phase.Terminal() {
			fmt.Println(eng.State.Message)
			return
		}
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "attack", "a":
			if len(fields) != 3 {
				fmt.Println("usage: attack <card#> <asset#>")
				continue
			}
			cardIdx, err1 := strconv.Atoi(fields[1])
			assetIdx, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				fmt.Println("usage: attack <card#> <asset#>")
				continue
			}
			doAttack(eng, cardIdx, assetIdx)
			render(eng)
		case "end", "e":
			eng.EndTurn(ctx)
			render(eng)
		case "state", "s":
			render(eng)
		case "log", "l":
			fmt.Print(log.FormatAll(eng.ActionLog()))
		case "help", "h", "?":
			printHelp()
		case "quit", "q":
			return
		default:
			fmt.Printf("unknown command %q (try 'help')\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  attack <card#> <asset#>   attack an AI asset with a card from your attack hand")
	fmt.Println("  end                       end your turn (the AI then plays its full turn)")
	fmt.Println("  state                     reprint the board")
	fmt.Println("  log                       print the action log")
	fmt.Println("  quit                      exit")
}

// doAttack maps 1-based display indices onto instance IDs and fires the
// attack. The engine silently ignores illegal requests; report those here so
// the human knows nothing happened.
func doAttack(eng *game.Engine, cardIdx, assetIdx int) {
	gs := eng.State
	hand := gs.Player.AttackHand
	if cardIdx < 1 || cardIdx > len(hand) {
		fmt.Printf("no card #%d in your attack hand\n", cardIdx)
		return
	}
	if assetIdx < 1 || assetIdx > len(gs.AI.Assets) {
		fmt.Printf("no AI asset #%d\n", assetIdx)
		return
	}
	target := gs.AI.Assets[assetIdx-1]
	if target.Destroyed() {
		fmt.Printf("asset #%d is already destroyed\n", assetIdx)
		return
	}

	eng.SelectCard(hand[cardIdx-1].ID)
	eng.SelectAsset(target.ID)
	eng.Attack()
}

func render(eng *game.Engine) {
	gs := eng.State
	fmt.Println()
	fmt.Printf("=== Turn %d | %s | attack pile %d, defense pile %d ===\n",
		gs.Turn, gs.Phase, len(gs.AttackPile), len(gs.DefensePile))
	if gs.Message != "" {
		fmt.Println(gs.Message)
	}

	fmt.Printf("\nAI assets (defenses: %d):\n", gs.AI.Defenses)
	renderAssets(gs.AI, false)
	fmt.Printf("\nYour assets (defenses: %d):\n", gs.Player.Defenses)
	renderAssets(gs.Player, true)

	fmt.Println("\nYour attack hand:")
	for i, c := range gs.Player.AttackHand {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
	fmt.Println("Your defense hand:")
	for i, c := range gs.Player.DefenseHand {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
	fmt.Println()
}

func renderAssets(ps *game.PlayerState, isOwner bool) {
	for i, a := range ps.Assets {
		name := game.AssetName(a.Card.Rank)
		if !isOwner && a.State == game.AssetFacedown {
			name = "(facedown)"
		}
		fmt.Printf("  %d. %-20s %-9s damage %d\n", i+1, name, a.State, a.Damage)
	}
}
