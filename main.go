package main

import "app-reconciler/cmd"

func main() {
	cmd.Execute()
}
