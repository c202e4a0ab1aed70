package main

import "github.com/darshoned/DfMA/cmd"

func main() {
	cmd.Execute()
}
