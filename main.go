package main

import "hellotutor/cmd"

func main() {
	cmd.Execute()
}
