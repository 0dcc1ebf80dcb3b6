package main

import (
	"github.com/alecthomas/kong"

	"github.com/mattgaskey/brewblog-api/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("brewblog-api"), kong.Description("brewblog-api is a brewery and beer catalog service."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
