package main

import "github.com/calumari/mailwalk/internal/cli"

func main() {
	cli.Execute()
}
