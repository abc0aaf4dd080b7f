package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/rcnapps/ordinand/internal/adminctl"
	"github.com/rcnapps/ordinand/internal/flagx"
	"github.com/rcnapps/ordinand/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	args := flagx.FilterArgs(os.Args[1:], []string{"-n"})
	fs := flag.NewFlagSet("adminctl", flag.ExitOnError)
	username := fs.String("n", "", "username of the admin account to create")
	_ = fs.Parse(args)

	if err := adminctl.Run(ctx, cfg, *username, os.Stdout); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

}
