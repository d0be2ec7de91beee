// main.go

package main

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/argus/cmd"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/argus/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()

	if err := telemetry.Init("argus"); err != nil {
		fmt.Fprintf(os.Stderr, "Telemetry init failed: %v\n", err)
	}

	cmd.Execute()
}
