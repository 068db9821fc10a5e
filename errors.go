package palettizer

import "errors"

var (
	// ErrAlreadyLocked is returned when sampling after the palette was built.
	ErrAlreadyLocked = errors.New("palettizer: palette already assembled, cannot sample more images")
	// ErrEmptyHistogram is returned when building with nothing sampled.
	ErrEmptyHistogram = errors.New("palettizer: nothing has been sampled, palette cannot be built")
	// ErrEmptyPalette is returned by reduce and dither calls without a usable palette.
	ErrEmptyPalette = errors.New("palettizer: palette is empty")
	// ErrUnknownKernel is returned for unrecognized dither kernel names.
	ErrUnknownKernel = errors.New("palettizer: unknown dither kernel")
	// ErrInvalidOptions wraps every Options validation failure.
	ErrInvalidOptions = errors.New("palettizer: invalid options")
	// ErrInvalidImage is returned for images whose buffer does not match their size.
	ErrInvalidImage = errors.New("palettizer: invalid image")
)
