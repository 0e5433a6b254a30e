// Command agentconv converts agent configuration files between formats
// without a running server.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
