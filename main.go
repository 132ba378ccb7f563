package main

import "github.com/doctools/texindex/cmd"

func main() {
	cmd.Execute()
}
