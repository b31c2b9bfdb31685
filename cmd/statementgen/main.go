package main

import "bank-statement-generator/internal/cli"

func main() {
	cli.Execute()
}
