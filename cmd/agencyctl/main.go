package main

import "github.com/SscSPs/agency_ledger_app/internal/cli"

func main() {
	cli.Execute()
}
