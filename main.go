package main

import "site-server/cmd"

func main() {
	cmd.Execute()
}
