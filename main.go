package main

import "github.com/KostasZigo/hashdemo/cmd"

func main() {
	cmd.Execute()
}
