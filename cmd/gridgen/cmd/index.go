package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wordgrid/engine/internal/wordsource"
)

var indexWordlist string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Load a word list and report its size and length distribution",
	Long: `index reads a word list from disk the way fill and serve do, and prints
summary counts so a word list can be sanity-checked before it's used to
generate grids.

Example:
  gridgen index --wordlist ./words.txt`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVarP(&indexWordlist, "wordlist", "w", "", "path to word list file (one word per line)")
	indexCmd.MarkFlagRequired("wordlist")
}

func runIndex(cmd *cobra.Command, args []string) error {
	words, err := wordsource.FromFile(indexWordlist)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}

	byLength := make(map[int]int)
	for _, w := range words {
		byLength[len(w)]++
	}

	lengths := make([]int, 0, len(byLength))
	for l := range byLength {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	fmt.Printf("%d words loaded from %s\n", len(words), indexWordlist)
	for _, l := range lengths {
		fmt.Printf("  length %2d: %d words\n", l, byLength[l])
	}
	return nil
}
