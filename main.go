package main

import "briq-utils/cmd"

func main() {
	cmd.Execute()
}
