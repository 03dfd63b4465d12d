// Package main starts the meeting readiness poll bot and handles
// termination.
//
// The process wires the Telegram transport and cron schedule around the
// poll lifecycle controller; all poll state is memory-resident and lost on
// restart.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	readycheckcmd "github.com/louisbranch/readycheck/internal/cmd/readycheck"
)

func main() {
	cfg, err := readycheckcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[READYCHECK] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := readycheckcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}
