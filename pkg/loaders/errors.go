package loaders

import "errors"

var (
	// ErrMissingCamera is returned for scene files that never define a camera
	ErrMissingCamera = errors.New("scene has no camera")
	// ErrUnknownObject is returned for an unrecognised object keyword or shape type
	ErrUnknownObject = errors.New("unknown object type")
	// ErrUnsupportedFormat is returned for file extensions or encodings no loader handles
	ErrUnsupportedFormat = errors.New("unsupported format")
)
