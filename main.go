package main

import "github.com/rvelden/tomat/cmd"

func main() {
	cmd.Execute()
}
