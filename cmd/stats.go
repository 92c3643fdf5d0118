package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		engine, err := restoreEngine(context.Background(), st)
		if err != nil {
			return fmt.Errorf("restore progress: %w", err)
		}
		p := engine.Progress()

		fmt.Println("DebugMe progress")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Level:       %d\n", p.Level)
		fmt.Printf("XP:          %d / %d to next level\n", p.XP, p.XPToNextLevel)
		fmt.Printf("Streak:      %d day(s)\n", p.Streak)
		fmt.Printf("Lessons:     %d / %d\n", len(p.CompletedLessons), len(cat.Lessons()))
		fmt.Printf("Challenges:  %d / %d\n", len(p.CompletedChallenges), len(cat.Challenges()))

		if len(p.Badges) == 0 {
			fmt.Println("Badges:      none yet")
			return nil
		}
		names := make([]string, len(p.Badges))
		for i, b := range p.Badges {
			names[i] = progression.BadgeName(b)
		}
		fmt.Printf("Badges:      %s\n", strings.Join(names, ", "))
		return nil
	},
}
