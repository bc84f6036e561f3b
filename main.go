package main

import "office-management/cmd"

func main() {
	cmd.Execute()
}
