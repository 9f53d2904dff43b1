package main

import "github.com/Shan319/number-dna-analyze/internal/cli"

func main() {
	cli.Execute()
}
