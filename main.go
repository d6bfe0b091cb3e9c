package main

import "github.com/mouse-blink/gofixer/cmd"

func main() {
	cmd.Execute()
}
