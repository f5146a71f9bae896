package main

import (
	"context"

	"github.com/risperss/anist/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
