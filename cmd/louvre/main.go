package main

import "github.com/acheul/go-louvre/cmd/louvre/cmd"

func main() {
	cmd.Execute()
}
