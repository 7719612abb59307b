package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "salon-web",
		Usage: "NailsByCeline website",
		// Running without a subcommand serves the site.
		Flags:  serveFlags(),
		Action: serve,
		Commands: []*cli.Command{
			serveCommand,
			sitemapCommand,
			robotsCommand,
			checkCommand,
			verifyAssetsCommand,
		},
	}
}
