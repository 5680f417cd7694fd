package main

import "github.com/mouse-blink/declfix/cmd"

func main() {
	cmd.Execute()
}
