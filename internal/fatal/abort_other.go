//go:build !unix

package fatal

import "os"

func abort() {
	os.Exit(134)
}
