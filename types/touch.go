package types

// TouchSample is one touch-read result. Coordinates are in the logical
// orientation declared by DisplayConfig; boards remap raw controller
// coordinates before reporting. When Pressed is false, X and Y are 0.
type TouchSample struct {
	Pressed bool
	X       int
	Y       int
}
