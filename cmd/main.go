package main

import "harulog/internal/cli"

func main() {
	cli.Execute()
}
