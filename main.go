package main

import (
	"terminally-dating/app/internal/cli"
)

func main() {
	cli.Execute()
}
