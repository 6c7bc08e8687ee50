package main

import "github.com/brandboost/brandboost/cmd"

func main() {
	cmd.Execute()
}
