package main

import "github.com/pfrederiksen/sa-calendars/internal/cli"

func main() {
	cli.Execute()
}
