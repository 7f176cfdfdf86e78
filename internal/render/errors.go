package render

import "errors"

// Errors returned by the render pipeline. Callers match them with errors.Is;
// the wrapped message carries the detail.
var (
	// ErrValidation reports unusable input such as an empty payload or caption.
	ErrValidation = errors.New("invalid input")

	// ErrCapacityExceeded reports a payload that does not fit the explicitly
	// requested version at error correction level H.
	ErrCapacityExceeded = errors.New("payload exceeds capacity of requested version")

	// ErrEncoding reports a payload that no QR version can hold.
	ErrEncoding = errors.New("payload cannot be encoded")

	// ErrAsset reports a missing or corrupt font resource.
	ErrAsset = errors.New("font asset unavailable")
)
