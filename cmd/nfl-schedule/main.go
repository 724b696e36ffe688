package main

import "github.com/tmcfar/nfl-schedule/internal/cli"

func main() {
	cli.Execute()
}
