// Rubik's cube simulator - CLI application for manipulating, shuffling and recording a 3x3x3 cube.
package main

import (
	"github.com/SeamusWaldron/rubiks_cube/internal/cli"
)

func main() {
	cli.Execute()
}
