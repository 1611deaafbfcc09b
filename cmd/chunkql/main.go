package main

import "github.com/alliance-genome/agr-ai-curation-sub000/internal/cli"

func main() {
	cli.Execute()
}
