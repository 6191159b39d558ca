package render

// Renderer draws one part of the frame
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible(ctx Context) bool
}
