package main

import "github.com/pvshed/pvshed/cmd"

func main() {
	cmd.Execute()
}
