package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/chat"
	"github.com/abhisek/debugme/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask BuggyChat a one-shot question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
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

		provider, err := llm.NewProvider(ctx, fileCfg.ResolveLLM(), st)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		engine, err := restoreEngine(ctx, st)
		if err != nil {
			return fmt.Errorf("restore progress: %w", err)
		}
		prof, err := restoreProfiles(ctx, st)
		if err != nil {
			return fmt.Errorf("restore profiles: %w", err)
		}

		snap := chat.Snapshot{CompletedLessonIDs: engine.Progress().CompletedLessons}
		if p, ok := prof.Selected(); ok {
			snap.Profile = &p
		}

		tutor := chat.NewService(provider, cat, chat.DefaultConfig())
		tutor.Ask(ctx, question, snap)

		deadline := time.After(2 * time.Minute)
		for {
			if reply, ok := tutor.ConsumeReply(); ok {
				if reply.Err != nil {
					return reply.Err
				}
				fmt.Println(reply.Content)
				return nil
			}
			select {
			case <-deadline:
				return fmt.Errorf("timed out waiting for a reply")
			case <-time.After(100 * time.Millisecond):
			}
		}
	},
}
