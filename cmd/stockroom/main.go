// Command stockroom manages a slot inventory from the command line.
package main

import "github.com/mesh-intelligence/stockroom/internal/cli"

func main() {
	cli.Execute()
}
