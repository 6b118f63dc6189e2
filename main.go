// Command ivedit is a terminal editor shell that saves a single .iv document
// and hands it to an external compiler.
package main

import "github.com/mouse-blink/ivedit/cmd"

func main() {
	cmd.Execute()
}
