package main

import "boxful-client/internal/cli"

func main() {
	cli.Execute()
}
