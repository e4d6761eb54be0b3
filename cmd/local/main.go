// Package main implements the fnbridge local harness CLI.
// It runs trigger event documents through the bridge pipeline without a
// Lambda deployment.
package main

import "github.com/fnbridge/fnbridge/cmd/local/cmd"

func main() {
	cmd.Execute()
}
