package main

import "opsboard/cmd/server/cmd"

func main() {
	cmd.Execute()
}
