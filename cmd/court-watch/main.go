package main

import "github.com/stjohnspark/court-watch/internal/cli"

func main() {
	cli.Execute()
}
