// ABOUTME: Version and product identification
// ABOUTME: Reported by the CLI banner and -version flag
package version

import "fmt"

const (
	Version      = "0.1.0"
	Product      = "sinewave"
	Manufacturer = "Resonate Protocol"
)

// String returns the product name and version
func String() string {
	return fmt.Sprintf("%s %s", Product, Version)
}
