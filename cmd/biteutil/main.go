package main

import (
	"context"

	"biteutil/cmd/biteutil/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
