package main

import "github.com/leandrodaf/synesthesia/cmd"

func main() {
	cmd.Execute()
}
