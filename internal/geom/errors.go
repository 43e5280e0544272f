package geom

import "errors"

var (
	// ErrInvalidArgument reports a size or count below a structural minimum.
	ErrInvalidArgument = errors.New("geom: invalid argument")
	// ErrIndexOutOfRange reports a vertex or ring index outside its declared bounds.
	ErrIndexOutOfRange = errors.New("geom: index out of range")
	// ErrMalformedGeometry reports a geometry that cannot be traversed, e.g. unset vertices.
	ErrMalformedGeometry = errors.New("geom: malformed geometry")
	// ErrSyntax reports WKT input that cannot be parsed.
	ErrSyntax = errors.New("wkt: syntax error")
)
