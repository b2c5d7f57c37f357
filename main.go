package main

import "github.com/peoplehub/peoplehub-services/cmd"

func main() {
	cmd.Execute()
}
