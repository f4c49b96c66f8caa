package main

import (
	"tfhive/internal/cmd"
)

func main() {
	cmd.Run()
}
