// Command drills runs small language-construct exercises on the console.
package main

import "github.com/mesh-intelligence/drills/internal/cli"

func main() {
	cli.Execute()
}
