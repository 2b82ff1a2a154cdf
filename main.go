package main

import "github.com/SujalChoudhari/Node-User-Settings/cmd"

func main() {
	cmd.Execute()
}
