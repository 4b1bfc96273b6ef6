package main

import "file-sorter/cmd"

func main() {
	cmd.Run(cmd.NewProducerCommand())
}
