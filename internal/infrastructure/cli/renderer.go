package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/cdw/internal/domain"
)

// RenderHealthReport prints the doctor report in a friendly, ASCII-only format.
func RenderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%-5s] %s: %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
	if len(report.Checks) > 0 {
		fmt.Fprintf(out, "\nOverall: %s\n", strings.ToUpper(string(report.Worst())))
	}
}
