package main

import "ubports-qa/internal/cli"

func main() {
	cli.Execute()
}
