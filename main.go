package main

import "github.com/jsphweid/viano/cmd"

func main() {
	cmd.Execute()
}
