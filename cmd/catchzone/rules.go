package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-zone/internal/catchzone"
	"github.com/vovakirdan/catch-zone/internal/config"
	"github.com/vovakirdan/catch-zone/internal/core"
)

var flagPlain bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the rules sheet",
	Long: `Print the rules for the effective configuration: items and scores,
how a session ends, the level curve and the lane vocabulary.

Examples:
  catchzone rules
  catchzone rules --plain > RULES.md`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print raw Markdown")
}

func runRules(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	md, err := rulesMarkdown(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagPlain {
		fmt.Print(md)
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating renderer: %v\n", err)
		os.Exit(1)
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering rules: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// rulesMarkdown builds the rules sheet for cfg.
func rulesMarkdown(cfg config.Config) (string, error) {
	catalog, err := catchzone.NewCatalog(cfg.Items)
	if err != nil {
		return "", err
	}
	hazard := catalog.Hazard()

	var sb strings.Builder
	sb.WriteString("# Catch Zone\n\n")
	sb.WriteString("Items fall through three lanes. Move the catcher under the fruit and stay\n")
	fmt.Fprintf(&sb, "out of the way of the %s. An item can be caught from %.0f%% of its fall\n", hazard.Name, cfg.Catch.Threshold)
	sb.WriteString("until it reaches the floor.\n\n")

	sb.WriteString("## Items\n\n")
	sb.WriteString("| Item | Token | Score |\n|---|---|---|\n")
	for _, k := range catalog.Kinds() {
		score := fmt.Sprintf("%d", k.Score)
		if k.Hazard {
			score = "game over"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", k.Name, k.Token, score)
	}
	fmt.Fprintf(&sb, "\nEach item is the %s with probability %.0f%%, otherwise a fruit chosen evenly.\n\n",
		hazard.Name, cfg.Spawn.HazardChance*100)

	sb.WriteString("## Game over\n\n")
	fmt.Fprintf(&sb, "- Catching the %s %s ends the session at once.\n", hazard.Name, hazard.Token)
	fmt.Fprintf(&sb, "- Missing %d fruit ends the session. Letting the %s fall is safe.\n\n", cfg.Session.MaxMisses, hazard.Name)

	sb.WriteString("## Levels\n\n")
	fmt.Fprintf(&sb, "Every %d seconds the level goes up and items fall faster. Items already\n", cfg.Session.LevelSeconds)
	sb.WriteString("in the air keep their speed.\n\n")
	sb.WriteString("| Level | Drop time |\n|---|---|\n")
	floor := cfg.Drop.FloorLevel()
	for level := 1; level <= floor; level++ {
		label := fmt.Sprintf("%d", level)
		if level == floor {
			label += "+"
		}
		fmt.Fprintf(&sb, "| %s | %.1fs |\n", label, cfg.Drop.Duration(level).Seconds())
	}

	sb.WriteString("\n## Moving\n\n")
	sb.WriteString("A command moves the catcher when it contains one of these words (any case):\n\n")
	sb.WriteString("| Lane | Words |\n|---|---|\n")
	words := map[core.Lane][]string{
		core.LaneLeft:   cfg.Vocabulary.Left,
		core.LaneCenter: cfg.Vocabulary.Center,
		core.LaneRight:  cfg.Vocabulary.Right,
	}
	for _, lane := range core.Lanes() {
		fmt.Fprintf(&sb, "| %s | %s |\n", strings.ToLower(lane.String()), strings.Join(words[lane], ", "))
	}
	return sb.String(), nil
}
