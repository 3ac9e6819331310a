package main

import "github.com/Khrischatyy/fieldhire-db/cmd"

func main() {
	cmd.Execute()
}
