package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ZulvikaK/bookstore/cmd/bookstore/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	commands.ExecuteContext(ctx)
}
