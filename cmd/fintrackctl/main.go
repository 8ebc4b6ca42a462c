/*Operator CLI for inspecting and exporting tracker data.*/
package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// context holds global options shared by all commands
type context struct {
	Backend        string `help:"Data backend to use [memory|sqlite|remote]." env:"DATA_BACKEND" default:"sqlite"`
	DBPath         string `help:"SQLite database path." env:"SQLITE_DB_PATH" default:"./data/fintrack.db"`
	RemoteURL      string `name:"remote-url" help:"Base URL of the remote tracker API." env:"REMOTE_BASE_URL"`
	RemoteEmail    string `name:"remote-email" help:"Login email for the remote tracker API." env:"REMOTE_EMAIL"`
	RemotePassword string `name:"remote-password" help:"Login password for the remote tracker API." env:"REMOTE_PASSWORD"`
}

// cli commands / args available
var cli struct {
	Ctx context `embed:""`

	Totals totalsCmd `cmd:"" help:"Print income, expense and balance totals."`
	List   listCmd   `cmd:"" help:"List transactions for one direction."`
	Export exportCmd `cmd:"" help:"Export one direction's transactions to Google Sheets."`
}

func main() {
	_ = godotenv.Load()
	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli.Ctx)
	ctx.FatalIfErrorf(err)
}
