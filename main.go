package main

import "github.com/lunastra/concord/cmd"

func main() {
	cmd.Execute()
}
