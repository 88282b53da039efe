package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordgrid/engine/internal/filler"
	"github.com/wordgrid/engine/internal/wordsource"
	"github.com/wordgrid/engine/pkg/dictionary"
	"github.com/wordgrid/engine/pkg/grid"
)

var (
	fillSize       string
	fillWordlist   string
	fillSeed       int64
	fillMaxRetries int
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill a grid with words from a word list and print the solution",
	Long: `fill builds an empty grid of the requested size, loads a word list, and
runs constraint-satisfaction backtracking to find a crossing arrangement of
words covering every row and column, printing the solved grid to stdout.

Examples:
  gridgen fill --size 5x5 --wordlist ./words.txt
  gridgen fill --size 4x4 --wordlist ./words.txt --seed 42 --max-retries 200`,
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().StringVarP(&fillSize, "size", "s", "5x5", "grid size as WIDTHxHEIGHT")
	fillCmd.Flags().StringVarP(&fillWordlist, "wordlist", "w", "", "path to word list file (one word per line)")
	fillCmd.Flags().Int64Var(&fillSeed, "seed", 0, "random seed (0 picks one from the current time)")
	fillCmd.Flags().IntVar(&fillMaxRetries, "max-retries", 50, "number of randomized attempts before giving up")
	fillCmd.MarkFlagRequired("wordlist")
}

func runFill(cmd *cobra.Command, args []string) error {
	width, height, err := parseSize(fillSize)
	if err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}

	logf("Loading wordlist from: %s", fillWordlist)
	words, err := wordsource.FromFile(fillWordlist)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	logf("Loaded %d words", len(words))

	seed := fillSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	dict := dictionary.New(words, 3, rng)
	g := grid.New(width, height)
	slots := g.RowAndColumnSlots()

	config := filler.Config{MaxRetries: fillMaxRetries}
	if verbosity > 1 {
		steps := 0
		config.OnStep = func(*grid.Grid) { steps++ }
		defer func() { logf("search took %d placement/backtrack steps", steps) }()
	}

	if err := filler.Fill(g, dict, slots, rng, config); err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}

	for ev := range g.PrintEvents(grid.Solution) {
		printEvent(ev)
	}
	return nil
}

func parseSize(size string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(size), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WIDTHxHEIGHT, got %q", size)
	}
	width, err = strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", size)
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", size)
	}
	return width, height, nil
}

func printEvent(ev grid.Event) {
	switch ev.Kind {
	case grid.LineBreak:
		fmt.Println()
	case grid.BlockCell:
		fmt.Print("#")
	case grid.Character:
		fmt.Printf("%c", ev.Char)
	case grid.Cross:
		fmt.Print("+")
	case grid.VertBorder:
		if ev.Border {
			fmt.Print("|")
		} else {
			fmt.Print(" ")
		}
	case grid.HorizBorder:
		if ev.Border {
			fmt.Print("-")
		} else {
			fmt.Print(" ")
		}
	}
}
