package cli

import "context"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	Ctx context.Context

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight is the number of lines left for the active view once the
// header (title, rule) and status bar (rule, status, hints) are drawn.
// Zero until the first WindowSizeMsg arrives.
func (s *SharedState) ContentHeight() int {
	if s.Height == 0 {
		return 0
	}
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

func (s *SharedState) context() context.Context {
	if s.Ctx == nil {
		return context.Background()
	}
	return s.Ctx
}
