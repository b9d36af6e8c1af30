//go:build headless

// ABOUTME: Placeholders for cgo backends in headless builds
// ABOUTME: Malgo and Oto report themselves unavailable so only the null device works
package output

import (
	"fmt"

	"github.com/Resonate-Protocol/sinewave-go/pkg/audio"
)

// unavailable is a device that can never be opened
type unavailable struct {
	name string
}

// NewMalgo returns a placeholder in headless builds
func NewMalgo() Device {
	return &unavailable{name: BackendMalgo}
}

// NewOto returns a placeholder in headless builds
func NewOto() Device {
	return &unavailable{name: BackendOto}
}

func (u *unavailable) Open(format audio.Format, framesPerBuffer int, fill FillFunc) error {
	return fmt.Errorf("%w: %s (headless build)", ErrBackendUnavailable, u.name)
}

func (u *unavailable) Close() error {
	return nil
}
