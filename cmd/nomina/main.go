// Command nomina computes Colombian payrolls from the command line.
package main

import "github.com/Hellzyr/Nominer/cli"

func main() {
	cli.Execute()
}
