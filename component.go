package pageroute

import (
	"context"
	"io"
)

// Component is a renderable view. templ.Component satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Targets is implemented by components that can render a fragment of
// themselves. For HTMX requests the HX-Target id is looked up here, so only the
// swapped element is rendered.
type Targets interface {
	Target(id string) (Component, bool)
}

// ComponentFunc adapts a function to a Component.
type ComponentFunc func(ctx context.Context, w io.Writer) error

func (f ComponentFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}
