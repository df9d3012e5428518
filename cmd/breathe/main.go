package main

import (
	"os"

	"github.com/ayoisaiah/breathe/app"
	"github.com/ayoisaiah/breathe/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
