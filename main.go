package main

import "github.com/zam-dot/carousel/cmd"

func main() {
	cmd.Execute()
}
