// Package chat implements the BuggyChat tutor: free-form Q&A grounded in
// the learner's completed lessons and career profile, plus structured
// next-lesson suggestions.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/debugme/internal/catalog"
	"github.com/abhisek/debugme/internal/llm"
)

// Config tunes tutor generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the tutor generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Reply is a finished tutor turn, or the error that ended it.
type Reply struct {
	Content string
	Err     error
}

// Service is the tutor conversation. Ask runs asynchronously; replies
// from turns that were cancelled by Reset are discarded.
type Service struct {
	provider llm.Provider
	catalog  *catalog.Catalog
	cfg      Config

	mu        sync.Mutex
	sessionID string
	history   []llm.Message
	gen       int
	pending   *Reply
	ready     bool
}

// NewService creates a tutor backed by the given provider and catalog.
func NewService(provider llm.Provider, cat *catalog.Catalog, cfg Config) *Service {
	return &Service{
		provider:  provider,
		catalog:   cat,
		cfg:       cfg,
		sessionID: uuid.NewString(),
	}
}

// SessionID identifies the current conversation in the event log.
func (s *Service) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// History returns a copy of the conversation so far.
func (s *Service) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Reset clears the conversation and starts a new session. Any in-flight
// reply is discarded when it lands.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.pending = nil
	s.ready = false
	s.gen++
	s.sessionID = uuid.NewString()
}

// Ask records the user's question and starts generating a reply. Only
// one reply is in-flight at a time; a new Ask replaces a pending one.
func (s *Service) Ask(ctx context.Context, question string, snap Snapshot) {
	s.mu.Lock()
	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: question})
	messages := make([]llm.Message, len(s.history))
	copy(messages, s.history)
	gen := s.gen
	sessionID := s.sessionID
	s.pending = nil
	s.ready = false
	s.mu.Unlock()

	go func() {
		ctx := llm.WithSession(llm.WithPurpose(ctx, llm.PurposeTutorChat), sessionID)

		resp, err := s.provider.Generate(ctx, llm.Request{
			System:      buildSystemPrompt(s.catalog, snap),
			Messages:    messages,
			MaxTokens:   s.cfg.MaxTokens,
			Temperature: s.cfg.Temperature,
		})

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			// Conversation was reset mid-flight.
			return
		}
		if err != nil {
			s.pending = &Reply{Err: fmt.Errorf("tutor reply: %w", err)}
		} else {
			content := resp.Text()
			s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: content})
			s.pending = &Reply{Content: content}
		}
		s.ready = true
	}()
}

// ConsumeReply returns the pending reply if one is ready.
// Returns (nil, false) while generation is still running.
func (s *Service) ConsumeReply() (*Reply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	reply := s.pending
	s.pending = nil
	s.ready = false
	return reply, reply != nil
}

// Suggestion is a structured next-lesson recommendation.
type Suggestion struct {
	LessonID   string `json:"lessonId"`
	Reason     string `json:"reason"`
	Confidence string `json:"confidence"`
}

// SuggestLesson asks for the single best next lesson for this learner.
// Synchronous; the suggested lesson is guaranteed to exist in the catalog.
func (s *Service) SuggestLesson(ctx context.Context, snap Snapshot) (*Suggestion, error) {
	s.mu.Lock()
	sessionID := s.sessionID
	s.mu.Unlock()

	ctx = llm.WithSession(llm.WithPurpose(ctx, llm.PurposeLessonSuggestion), sessionID)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: buildSystemPrompt(s.catalog, snap),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Suggest the single best next lesson for me from the lesson catalog. Skip lessons I already completed."},
		},
		Schema:    SuggestionSchema,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("lesson suggestion: %w", err)
	}

	var out Suggestion
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse suggestion: %w", err)
	}

	if _, ok := s.catalog.LessonByID(out.LessonID); !ok {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("suggested lesson %q is not in the catalog", out.LessonID),
		}
	}

	return &out, nil
}
