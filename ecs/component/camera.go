package component

// Camera is a 2D view centred on its entity's transform.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
