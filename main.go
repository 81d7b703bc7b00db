package main

import "github.com/nvuaille/nwcread/cmd"

func main() {
	cmd.Execute()
}
