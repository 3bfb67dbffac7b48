package main

import "github.com/go-leo/solid/internal/cli"

func main() {
	cli.Execute()
}
