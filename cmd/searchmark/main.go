package main

import "github.com/searchmark/searchmark/internal/cli"

func main() {
	cli.Execute()
}
