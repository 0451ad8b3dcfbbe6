package main

import "github.com/conormcp/regions/cmd/ds9reg/cmd"

func main() {
	cmd.Execute()
}
