package olc

import "errors"

var (
	// ErrCodeLength indicates a requested or implied code length the format
	// cannot represent.
	ErrCodeLength = errors.New("olc: invalid code length")
	// ErrNotFullCode indicates an operation that needs a full code was given
	// something else.
	ErrNotFullCode = errors.New("olc: not a full code")
	// ErrNotShortCode indicates a code that is neither short nor full, so it
	// cannot be recovered.
	ErrNotShortCode = errors.New("olc: code is neither short nor full")
	// ErrPaddedCode indicates a padded code where significant digits were
	// required.
	ErrPaddedCode = errors.New("olc: code contains padding")
	// ErrUnsupportedOperation indicates an operation the selected format
	// version does not define.
	ErrUnsupportedOperation = errors.New("olc: operation not supported by this format version")
)
