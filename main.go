package main

import "bnk-converter/cmd"

func main() {
	cmd.Execute()
}
