// SPDX-License-Identifier: MIT

//go:build !unix

package cover

import "time"

var processOrigin = time.Now()

// processTime falls back to wall time since package initialisation.
func processTime() time.Duration { return time.Since(processOrigin) }
