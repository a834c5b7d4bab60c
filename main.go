package main

import "github.com/mouse-blink/dnatool/cmd"

func main() {
	cmd.Execute()
}
