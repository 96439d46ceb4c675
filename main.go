package main

import "github.com/masmgr/git-history-mcp/cmd"

func main() {
	cmd.Run()
}
