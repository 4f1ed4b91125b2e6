package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// ErrUnknownDemo is returned when a requested slug is not in the registry.
var ErrUnknownDemo = errors.New("unknown demo")

// Runner renders demonstrations. Output is deterministic: rendering the same
// demos always produces the same bytes, and parallel rendering produces the
// same transcript as sequential rendering.
type Runner interface {
	// RunAll writes every demonstration to w in registry order.
	RunAll(ctx context.Context, w io.Writer) error
	// Run writes the selected demonstrations to w in registry order.
	// The empty selection means all of them.
	Run(ctx context.Context, w io.Writer, slugs ...m.Slug) error
	// Render returns the transcript of a single demonstration.
	Render(ctx context.Context, slug m.Slug) (m.Transcript, error)
	// RenderAll renders every demonstration into its own transcript,
	// using up to threads goroutines, and returns them in registry order.
	RenderAll(ctx context.Context, threads int) ([]m.Transcript, error)
}

type runner struct {
	registry Registry
}

// NewRunner creates a Runner backed by the given registry.
func NewRunner(registry Registry) Runner {
	return &runner{registry: registry}
}

func (r *runner) RunAll(ctx context.Context, w io.Writer) error {
	return r.Run(ctx, w)
}

func (r *runner) Run(ctx context.Context, w io.Writer, slugs ...m.Slug) error {
	selected, err := r.resolve(slugs)
	if err != nil {
		return err
	}

	for _, demo := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}

		transcript, err := r.Render(ctx, demo.Slug)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, transcript.Text); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
	}

	return nil
}

func (r *runner) Render(ctx context.Context, slug m.Slug) (m.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return m.Transcript{}, err
	}

	demo, run, ok := r.registry.Lookup(slug)
	if !ok {
		return m.Transcript{}, fmt.Errorf("%w: %q", ErrUnknownDemo, slug)
	}

	slog.Debug("rendering demo", "slug", demo.Slug, "number", demo.Number)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n--- %d) %s ---\n", demo.Number, demo.Title)
	run(&buf)

	return m.Transcript{Demo: demo, Text: buf.String()}, nil
}

func (r *runner) RenderAll(ctx context.Context, threads int) ([]m.Transcript, error) {
	if threads < 1 {
		threads = 1
	}

	demos := r.registry.All()
	transcripts := make([]m.Transcript, len(demos))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, demo := range demos {
		group.Go(func() error {
			transcript, err := r.Render(groupCtx, demo.Slug)
			if err != nil {
				return err
			}

			transcripts[i] = transcript

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return transcripts, nil
}

// resolve maps the requested slugs to descriptors in registry order.
func (r *runner) resolve(slugs []m.Slug) ([]m.Demo, error) {
	all := r.registry.All()
	if len(slugs) == 0 {
		return all, nil
	}

	wanted := make(map[m.Slug]bool, len(slugs))
	for _, slug := range slugs {
		if _, _, ok := r.registry.Lookup(slug); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, slug)
		}

		wanted[slug] = true
	}

	selected := make([]m.Demo, 0, len(wanted))
	for _, demo := range all {
		if wanted[demo.Slug] {
			selected = append(selected, demo)
		}
	}

	return selected, nil
}
