package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/debugme/internal/app"
	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/chat"
	"github.com/abhisek/debugme/internal/llm"
	"github.com/abhisek/debugme/internal/profile"
	"github.com/abhisek/debugme/internal/progression"
	"github.com/abhisek/debugme/internal/store"
)

// runApp opens the store, restores learner state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	st, fileCfg, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	engine, err := restoreEngine(ctx, st)
	if err != nil {
		return fmt.Errorf("restore progress: %w", err)
	}

	profiles, err := restoreProfiles(ctx, st)
	if err != nil {
		return fmt.Errorf("restore profiles: %w", err)
	}

	deps := app.Deps{
		Catalog: cat,
		Engine:  engine,
		Profile: profiles,
		Store:   st,
	}

	// The tutor is optional; everything else works without a provider.
	llmCfg := fileCfg.ResolveLLM()
	provider, err := llm.NewProvider(ctx, llmCfg, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "BuggyChat will be unavailable.")
	} else {
		deps.Tutor = chat.NewService(provider, cat, chat.DefaultConfig())
	}

	return app.Run(deps)
}

// restoreEngine rebuilds the progression engine from persisted state,
// starting fresh when none exists.
func restoreEngine(ctx context.Context, st *store.Store) (*progression.Engine, error) {
	p, err := st.LoadProgress(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return progression.NewEngine(), nil
	}
	return progression.Restore(*p)
}

// restoreProfiles rebuilds the profile store from persisted rows.
func restoreProfiles(ctx context.Context, st *store.Store) (*profile.Store, error) {
	profiles, selected, err := st.LoadProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return profile.Restore(profiles, selected)
}
