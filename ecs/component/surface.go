package component

// Surface is the size of the drawing surface in pixels. The surface system
// keeps it in sync with the window.
type Surface struct {
	Width  int
	Height int
}

var SurfaceComponent = NewComponent[Surface]()
