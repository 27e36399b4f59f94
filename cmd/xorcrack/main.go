package main

import "github.com/aldocassola/xorcrack/cmd/xorcrack/cmd"

func main() {
	cmd.Execute()
}
