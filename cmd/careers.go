package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/recommend"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Show career compatibility for the selected profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, _, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		prof, err := restoreProfiles(context.Background(), st)
		if err != nil {
			return fmt.Errorf("restore profiles: %w", err)
		}

		selected, ok := prof.Selected()
		if !ok {
			fmt.Println("No profile selected. Run debugme and create one under PROFILES.")
			return nil
		}

		matches := recommend.RecommendCareers(selected.Competencies, cat.Careers(), limit)

		fmt.Printf("Career compatibility for %q\n", selected.Name)
		fmt.Println(strings.Repeat("─", 48))
		for i, m := range matches {
			fmt.Printf("%2d. %-30s %5.1f%%\n", i+1, m.Career.Name, m.Score)
		}

		gaps := recommend.RecommendLearningPaths(selected.Competencies, cat)
		if len(gaps) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Improvement plan")
		fmt.Println(strings.Repeat("─", 48))
		for _, g := range gaps {
			fmt.Printf("%s (level %d)\n", g.Competency, g.Level)
			for _, p := range g.Paths {
				fmt.Printf("  - %s\n", p)
			}
		}
		return nil
	},
}

func init() {
	careersCmd.Flags().IntP("limit", "n", recommend.DefaultLimit, "Number of careers to show")
}
