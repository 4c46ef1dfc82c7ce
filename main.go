package main

import "github.com/arbitraryrw/folio/cmd"

func main() {
	cmd.Execute()
}
