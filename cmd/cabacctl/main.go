package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	cmd "github.com/ramabhadrarao/DeepCABAC-Final/cmd/cabacctl/cmd"
	"github.com/ramabhadrarao/DeepCABAC-Final/pkg/logging"
)

var (
	GitSHA string = "NA"
)

func main() {
	// register sigterm for graceful shutdown
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()
	go func() {
		defer cnc() // subsequent ctrl-c restores the default kill behavior
		<-ctx.Done()
	}()
	slog.SetDefault(logging.Logger(os.Stdout, false, slog.LevelInfo))
	ctx = logging.AppendCtx(ctx,
		slog.Group("cabac",
			slog.String("name", "ctl"),
			slog.String("git", GitSHA),
		))
	cmd.NewRoot(ctx, GitSHA).Execute()
}
