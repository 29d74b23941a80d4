package api

import (
	"fmt"
	"io"
)

// PrintEndpoints writes the startup banner listing the bound port and the
// URL of every public route.
func PrintEndpoints(w io.Writer, port int) error {
	base := fmt.Sprintf("http://localhost:%d", port)
	_, err := fmt.Fprintf(w, `Server running on port %d
Endpoints:
  %s/           - Hello World page
  %s/health     - Health check
  %s/ready      - Readiness check
  %s/api/info   - API info
`, port, base, base, base, base)
	return err
}
