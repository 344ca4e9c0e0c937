// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FormatCallError formats a failed gRPC call in a user-friendly way.
// The operation name describes what the user asked for ("generating SQL").
func FormatCallError(operation string, err error) string {
	var builder strings.Builder

	st, ok := status.FromError(err)
	if !ok {
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("Failed while %s", operation))
		builder.WriteString("\n\n")
		builder.WriteString(Mask(err.Error()))
		return builder.String()
	}

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("Failed while %s", operation))
	builder.WriteString("\n\n")

	switch st.Code() {
	case codes.Internal:
		builder.WriteString("The Vanna engine reported a fault for this request.\n")
		builder.WriteString("The request itself reached the service; the engine could not complete it.\n")

	case codes.Unavailable:
		builder.WriteString("The vannabridge service could not be reached.\n")
		builder.WriteString("Possible reasons:\n")
		builder.WriteString("  • The service is not running on the given address\n")
		builder.WriteString("  • A firewall is blocking the connection\n")
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Start it with 'vannabridge serve' or pass --addr"))
		builder.WriteString("\n")

	case codes.DeadlineExceeded, codes.Canceled:
		builder.WriteString("The call was cancelled or timed out before the engine answered.\n")
		builder.WriteString("SQL generation on large schemas can be slow; try again or raise the timeout.\n")

	default:
		builder.WriteString(fmt.Sprintf("The service answered with status %s.\n", st.Code()))
	}

	// Technical details (optional, for debugging)
	if msg := strings.TrimSpace(st.Message()); msg != "" {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(msg)))
	}

	return builder.String()
}

// PresentCallError displays a formatted call error.
func PresentCallError(operation string, err error) {
	fmt.Println()
	fmt.Println(FormatCallError(operation, err))
	fmt.Println()
}
