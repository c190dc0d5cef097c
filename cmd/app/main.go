package main

import "hazardpoint/cmd"

func main() {
	cmd.Run()
}
